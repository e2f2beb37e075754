package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"+57 300 123 4567", "573001234567"},
		{"+55 (11) 98888-1001", "5511988881001"},
		{"3001234567", "3001234567"},
		{"sin dígitos", ""},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.out, NormalizePhone(tc.in), "input %q", tc.in)
	}
}

func TestComposeLink(t *testing.T) {
	link, err := ComposeLink("+57 300-123-4567", "Hola Ana! ¿Cómo va la maleta?")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/573001234567?text=Hola+Ana%21+%C2%BFC%C3%B3mo+va+la+maleta%3F", link)
}

func TestComposeLink_TelefonoSinDigitos(t *testing.T) {
	_, err := ComposeLink("n/a", "hola")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sin dígitos")
}
