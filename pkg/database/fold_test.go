package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("ÉLECTRICITÉ"), Fold(" électricité "))
	assert.Equal(t, "strasse", Fold("STRASSE"))
	assert.NotEqual(t, Fold("Caisse"), Fold("Caisses"))
}

func TestLikePatterns(t *testing.T) {
	assert.Equal(t, `%50\%%`, Contains("50%"))
	assert.Equal(t, `a\_b%`, HasPrefix("a_b"))
	assert.Equal(t, `c:\\tmp`, EscapeLike(`c:\tmp`))
}
