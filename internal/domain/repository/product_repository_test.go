package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductFilterEmpty(t *testing.T) {
	assert.True(t, ProductFilter{}.Empty())
	assert.False(t, ProductFilter{Name: "arroz"}.Empty())
	assert.False(t, ProductFilter{Barcode: "7701234567890"}.Empty())
	assert.False(t, ProductFilter{Category: "abarrotes"}.Empty())
}
