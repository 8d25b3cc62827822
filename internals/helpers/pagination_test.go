package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, 2, 20)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasMore)

	last := BuildPagination(45, 3, 20)
	assert.False(t, last.HasMore)

	empty := BuildPagination(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasMore)
}

func TestPaginateSlice(t *testing.T) {
	items := make([]int, 0, 7)
	for i := 1; i <= 7; i++ {
		items = append(items, i)
	}

	page1, p := PaginateSlice(items, 1, 3)
	assert.Equal(t, []int{1, 2, 3}, page1)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasMore)

	page3, p := PaginateSlice(items, 3, 3)
	assert.Equal(t, []int{7}, page3)
	assert.False(t, p.HasMore)
}

func TestPaginateSliceBeyondEnd(t *testing.T) {
	out, p := PaginateSlice([]int{1, 2}, 5, 10)
	require.NotNil(t, out)
	assert.Empty(t, out)
	assert.Equal(t, int64(2), p.Total)
}

func TestPaginateSliceEmpty(t *testing.T) {
	out, p := PaginateSlice([]string{}, 1, 20)
	assert.Empty(t, out)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasMore)
}
