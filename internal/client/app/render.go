package app

import (
	"context"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
	"github.com/dmitrijs2005/rentaltracker/internal/client/page"
)

var listTemplates = template.Must(template.New("lists").Parse(`
{{- define "properties" -}}
{{- if not . -}}
<p>No properties found. <a href="#" id="` + page.AddFirstProperty + `">Add your first property</a>.</p>
{{- else -}}
{{- range . }}
<div class="property-card">
<h3>{{ .Address }}</h3>
<p><strong>Purchase Price:</strong> {{ .Price }}</p>
{{- with .Rent }}
<p><strong>Intended Rent:</strong> {{ . }}/month</p>
{{- end }}
{{- with .Year }}
<p><strong>Year Built:</strong> {{ . }}</p>
{{- end }}
{{- with .Added }}
<p><strong>Added:</strong> {{ . }}</p>
{{- end }}
</div>
{{- end }}
{{- end -}}
{{- end -}}

{{- define "criteria" -}}
{{- if not . -}}
<p>No buying criteria defined yet.</p>
{{- else -}}
{{- range . }}
<div class="criteria-card">
<h3>{{ .Name }}</h3>
{{- with .CapRate }}
<p><strong>Min Cap Rate:</strong> {{ . }}</p>
{{- end }}
{{- with .CashOnCash }}
<p><strong>Min Cash-on-Cash:</strong> {{ . }}</p>
{{- end }}
{{- with .MaxPrice }}
<p><strong>Max Purchase Price:</strong> {{ . }}</p>
{{- end }}
<p><strong>Status:</strong> {{ .Status }}</p>
</div>
{{- end }}
{{- end -}}
{{- end -}}
`))

type propertyCard struct {
	Address string
	Price   string
	Rent    string
	Year    string
	Added   string
}

type criterionCard struct {
	Name       string
	CapRate    string
	CashOnCash string
	MaxPrice   string
	Status     string
}

// money formats v as a dollar amount with thousands separators.
func money(v float64) string {
	return "$" + humanize.Commaf(v)
}

func optionalMoney(v *float64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return money(*v)
}

func optionalPercent(v *float64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + "%"
}

func optionalInt(v *int) string {
	if v == nil || *v == 0 {
		return ""
	}
	return strconv.Itoa(*v)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("1/2/2006")
}

func renderProperties(list []models.Property) (string, error) {
	cards := make([]propertyCard, 0, len(list))
	for _, p := range list {
		cards = append(cards, propertyCard{
			Address: p.Address,
			Price:   money(p.PurchasePrice),
			Rent:    optionalMoney(p.IntendedRent),
			Year:    optionalInt(p.YearBuilt),
			Added:   date(p.CreatedAt),
		})
	}
	return execute("properties", cards)
}

func renderCriteria(list []models.BuyingCriterion) (string, error) {
	cards := make([]criterionCard, 0, len(list))
	for _, c := range list {
		status := "Inactive"
		if c.IsActive {
			status = "Active"
		}
		cards = append(cards, criterionCard{
			Name:       c.Name,
			CapRate:    optionalPercent(c.MinCapRate),
			CashOnCash: optionalPercent(c.MinCashOnCash),
			MaxPrice:   optionalMoney(c.MaxPurchasePrice),
			Status:     status,
		})
	}
	return execute("criteria", cards)
}

func execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := listTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// DisplayProperties renders list into the properties container, or the
// empty-state message with a link to the add-property section.
func (a *App) DisplayProperties(list []models.Property) {
	fragment, err := renderProperties(list)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.logger.Error(context.Background(), "failed to render properties", "error", err)
		return
	}
	a.doc.Get(page.PropertiesList).SetHTML(fragment)
	link := a.doc.Get(page.AddFirstProperty)
	if len(list) == 0 {
		link.RemoveClass(page.ClassHidden)
	} else {
		link.AddClass(page.ClassHidden)
	}
}

// DisplayBuyingCriteria renders list into the criteria container, or the
// empty-state message.
func (a *App) DisplayBuyingCriteria(list []models.BuyingCriterion) {
	fragment, err := renderCriteria(list)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.logger.Error(context.Background(), "failed to render buying criteria", "error", err)
		return
	}
	a.doc.Get(page.CriteriaList).SetHTML(fragment)
}
