package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSimple(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, Tokenize("1,2,3"))
}

func TestTokenizeEscapedComma(t *testing.T) {
	assert.Equal(t, []string{"a,b", "c"}, Tokenize(`a\,b,c`))
}

func TestTokenizeSingleValue(t *testing.T) {
	assert.Equal(t, []string{"only"}, Tokenize("only"))
}
