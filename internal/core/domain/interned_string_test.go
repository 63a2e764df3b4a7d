package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/abbsmeta/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("base-devel")
	b := domain.NewInternedString("base-" + "devel")

	assert.Equal(t, a, b, "identical strings share a handle")
	assert.Equal(t, "base-devel", a.String())
	assert.NotEqual(t, a, domain.NewInternedString("extra-web"))
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString
	assert.Empty(t, zero.String())
}
