package mis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/peelmis/builder"
	"github.com/katalvlaran/peelmis/mis"
)

func TestVerify(t *testing.T) {
	g := mustBuild(t, nil, builder.Path(4))
	tests := []struct {
		name string
		in   []bool
		want error
	}{
		{"alternating", []bool{true, false, true, false}, nil},
		{"ends", []bool{true, false, false, true}, nil},
		{"adjacent", []bool{true, true, false, true}, mis.ErrNotIndependent},
		{"uncovered", []bool{true, false, false, false}, mis.ErrNotMaximal},
		{"short", []bool{true}, mis.ErrSizeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := mis.Verify(g, tc.in)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConflictsAndMembers(t *testing.T) {
	g := mustBuild(t, nil, builder.Complete(4))
	in := []bool{true, true, false, true}
	assert.Equal(t, 3, mis.Conflicts(g, in))
	assert.Equal(t, []uint32{0, 1, 3}, mis.Members(in))
	assert.Nil(t, mis.Members([]bool{false}))
}
