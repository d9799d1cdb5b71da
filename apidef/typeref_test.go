package apidef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeReferenceString(t *testing.T) {
	tests := []struct {
		name string
		ref  TypeReference
		want string
	}{
		{"plain", TypeReference{Name: "User"}, "User"},
		{
			"single argument",
			TypeReference{Name: "Response", Args: []TypeArgument{
				{Param: "T", Type: TypeReference{Name: "User"}},
			}},
			"Response[T:User]",
		},
		{
			"nested argument",
			TypeReference{Name: "PagedResult", Args: []TypeArgument{
				{Param: "T", Type: TypeReference{Name: "List", Args: []TypeArgument{
					{Param: "T", Type: TypeReference{Name: "Sample"}},
				}}},
			}},
			"PagedResult[T:List[T:Sample]]",
		},
		{
			"multiple arguments",
			TypeReference{Name: "Map", Args: []TypeArgument{
				{Param: "K", Type: TypeReference{Name: "String"}},
				{Param: "V", Type: TypeReference{Name: "Sample"}},
			}},
			"Map[K:String,V:Sample]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.String())
		})
	}
}

func TestTypeReferenceIsZero(t *testing.T) {
	assert.True(t, TypeReference{}.IsZero())
	assert.False(t, TypeReference{Name: "User"}.IsZero())
}

func TestTypeReferenceIsGenericReference(t *testing.T) {
	assert.False(t, TypeReference{Name: "User"}.IsGenericReference())
	assert.True(t, TypeReference{
		Name: "Response",
		Args: []TypeArgument{{Param: "T", Type: TypeReference{Name: "User"}}},
	}.IsGenericReference())
}
