package page

// Section names.
const (
	SectionLogin       = "login"
	SectionRegister    = "register"
	SectionProperties  = "properties"
	SectionAddProperty = "add-property"
	SectionCriteria    = "criteria"
)

// Sections lists every section in navigation order.
var Sections = []string{SectionLogin, SectionRegister, SectionProperties, SectionAddProperty, SectionCriteria}

// Element ids outside the per-section pattern.
const (
	UserInfo  = "user-info"
	LogoutBtn = "logout-btn"

	LoginForm    = "login-form"
	RegisterForm = "register-form"
	PropertyForm = "property-form"

	LoginEmail    = "login-email"
	LoginPassword = "login-password"

	RegisterEmail     = "register-email"
	RegisterPassword  = "register-password"
	RegisterFirstName = "register-first-name"
	RegisterLastName  = "register-last-name"

	PropertyAddress = "property-address"
	PropertyPrice   = "property-price"
	PropertyRent    = "property-rent"
	PropertyYear    = "property-year"

	LoginError      = "login-error"
	RegisterError   = "register-error"
	RegisterSuccess = "register-success"
	PropertyError   = "property-error"
	PropertySuccess = "property-success"

	PropertiesList = "properties-list"
	CriteriaList   = "criteria-list"

	// AddFirstProperty is the call-to-action link of the empty properties list.
	AddFirstProperty = "add-first-property"
)

// SectionID returns the element id of section name.
func SectionID(name string) string { return name + "-section" }

// NavID returns the element id of the navigation button of section name.
func NavID(name string) string { return "nav-" + name }

var sectionTitles = map[string]string{
	SectionLogin:       "Login",
	SectionRegister:    "Register",
	SectionProperties:  "My Properties",
	SectionAddProperty: "Add Property",
	SectionCriteria:    "Buying Criteria",
}

// Title returns the heading of section name.
func Title(name string) string { return sectionTitles[name] }

// Field describes one input of a form.
type Field struct {
	ID     string
	Label  string
	Secret bool
}

// Forms maps each form id to its fields, in display order.
var Forms = map[string][]Field{
	LoginForm: {
		{ID: LoginEmail, Label: "Email"},
		{ID: LoginPassword, Label: "Password", Secret: true},
	},
	RegisterForm: {
		{ID: RegisterEmail, Label: "Email"},
		{ID: RegisterPassword, Label: "Password", Secret: true},
		{ID: RegisterFirstName, Label: "First Name"},
		{ID: RegisterLastName, Label: "Last Name"},
	},
	PropertyForm: {
		{ID: PropertyAddress, Label: "Address"},
		{ID: PropertyPrice, Label: "Purchase Price"},
		{ID: PropertyRent, Label: "Intended Monthly Rent (optional)"},
		{ID: PropertyYear, Label: "Year Built (optional)"},
	},
}

// NewDocument builds the page: sections, navigation, forms, message slots and
// list containers. Every section and every message starts hidden, as do the
// user greeting and the logout button.
func NewDocument() *Document {
	d := New()

	for _, s := range Sections {
		nav := d.Add(&Element{ID: NavID(s), Label: Title(s)})
		nav.AddClass(ClassNavButton)
	}
	d.Add(&Element{ID: UserInfo}).AddClass(ClassHidden)
	d.Add(&Element{ID: LogoutBtn, Label: "Logout"}).AddClass(ClassHidden)

	for _, s := range Sections {
		sec := d.Add(&Element{ID: SectionID(s), Label: Title(s)})
		sec.AddClass(ClassSection)
		sec.AddClass(ClassHidden)
	}

	addForm(d, SectionLogin, LoginForm, LoginError)
	addForm(d, SectionRegister, RegisterForm, RegisterError, RegisterSuccess)
	addForm(d, SectionAddProperty, PropertyForm, PropertyError, PropertySuccess)

	d.Add(&Element{ID: PropertiesList, Parent: SectionID(SectionProperties)})
	d.Add(&Element{ID: CriteriaList, Parent: SectionID(SectionCriteria)})
	d.Add(&Element{ID: AddFirstProperty, Parent: PropertiesList, Label: "Add your first property"}).AddClass(ClassHidden)

	return d
}

func addForm(d *Document, section, formID string, messages ...string) {
	parent := SectionID(section)
	for _, m := range messages {
		d.Add(&Element{ID: m, Parent: parent}).AddClass(ClassHidden)
	}
	d.Add(&Element{ID: formID, Parent: parent})
	for _, f := range Forms[formID] {
		d.Add(&Element{ID: f.ID, Parent: formID, Label: f.Label})
	}
}
