package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const encodedGreeting = "Hola%20Dr./Dra.%20P%C3%A9rez%2C%20encontr%C3%A9%20su%20perfil%20en%20el%20Directorio%20de%20Salud%20Valle%20de%20Uco%20y%20quisiera%20m%C3%A1s%20informaci%C3%B3n%20sobre%20su%20atenci%C3%B3n."

func TestLinkReplacesLeadingZero(t *testing.T) {
	link, ok := Link("011 4444-5555", "Juan Pérez")
	require.True(t, ok)
	assert.Equal(t, "https://wa.me/541144445555?text="+encodedGreeting, link)
}

func TestLinkKeepsCountryPrefix(t *testing.T) {
	link, ok := Link("54 9 261 555-0000", "Ana Gómez")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5492615550000?text="))
}

func TestLinkPrependsCountryCode(t *testing.T) {
	link, ok := Link("261 456-7890", "María López")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/542614567890?text="))
}

func TestLinkUsesSurname(t *testing.T) {
	link, ok := Link("011 1234-5678", "Juan Carlos Del Valle")
	require.True(t, ok)
	assert.Contains(t, link, "Valle")
	assert.NotContains(t, link, "Juan%20Carlos")
}

func TestLinkSingleTokenName(t *testing.T) {
	link, ok := Link("011 1234-5678", "Gutiérrez")
	require.True(t, ok)
	assert.Contains(t, link, "Guti%C3%A9rrez")
}

func TestLinkWithoutNumber(t *testing.T) {
	_, ok := Link("", "Juan Pérez")
	assert.False(t, ok)

	_, ok = Link("sin número", "Juan Pérez")
	assert.False(t, ok)
}
