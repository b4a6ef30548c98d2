package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t, "quizdeck:quiz:detail:abc", GenerateCacheKey("quiz", "detail", "abc"))
	assert.Equal(t, "quizdeck:quiz:list:all:page_1", GenerateCacheKey("quiz", "list", "all", "page", "1"))
}
