package netx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "http", in: "http://127.0.0.1:8080", want: "http://127.0.0.1:8080"},
		{name: "https trailing slash", in: "https://rent.example.com/", want: "https://rent.example.com"},
		{name: "bare host port", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "path prefix kept", in: "http://gw.local/rental/", want: "http://gw.local/rental"},
		{name: "spaces", in: "  http://a:1  ", want: "http://a:1"},
		{name: "empty", in: "", wantErr: true},
		{name: "ftp", in: "ftp://files.local", wantErr: true},
		{name: "no host", in: "http://", wantErr: true},
		{name: "query", in: "http://a:1/?x=1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ServerURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
