package question

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryMapKeepsIDOrder(t *testing.T) {
	data, err := json.Marshal(CategoryMap{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 10, Type: `Films "and" TV`},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"1":"Science","2":"Art","10":"Films \"and\" TV"}`, string(data))

	data, err = json.Marshal(CategoryMap{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestFlexibleIntAcceptsNumbersAndStrings(t *testing.T) {
	var body struct {
		A FlexibleInt `json:"a"`
		B FlexibleInt `json:"b"`
		C FlexibleInt `json:"c"`
		D FlexibleInt `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 3, "b": "4", "c": "", "d": null}`), &body))
	assert.Equal(t, FlexibleInt(3), body.A)
	assert.Equal(t, FlexibleInt(4), body.B)
	assert.Equal(t, FlexibleInt(0), body.C)
	assert.Equal(t, FlexibleInt(0), body.D)

	var bad struct {
		A FlexibleInt `json:"a"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"a": "three"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"a": 2.5}`), &bad))
}
