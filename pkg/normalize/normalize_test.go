package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercases",
			in:   "HUND",
			want: "hund",
		},
		{
			name: "strips accents",
			in:   "la Préhistoire",
			want: "la prehistoire",
		},
		{
			name: "collapses whitespace",
			in:   "  le \t chasseur-cueilleur  ",
			want: "le chasseur-cueilleur",
		},
		{
			name: "mixed accents and case",
			in:   "Évolution  HUMAINE",
			want: "evolution humaine",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
		{
			name: "cedilla and ligature stay letters",
			in:   "Français",
			want: "francais",
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestFold_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Préhistoire", "  DER   Jäger ", "l'archéologue", "", "déjà   vu"}

	for _, in := range inputs {
		once := Fold(in)
		assert.Equal(t, once, Fold(once), "Fold must be idempotent for %q", in)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal("Préhistoire", "prehistoire"))
	assert.True(t, Equal("  le troc ", "LE TROC"))
	assert.False(t, Equal("der Nomade", "die Nomadin"))
}
