package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArray(t *testing.T) {
	t.Parallel()

	v := Array(String())

	assert.True(t, v.Validate([]any{"a", "b"}))
	assert.False(t, v.Validate([]any{"a", 1}))

	t.Run("empty sequence accepts", func(t *testing.T) {
		t.Parallel()

		assert.True(t, v.Validate([]any{}))
		assert.True(t, v.Validate([]string{}))
	})

	t.Run("typed slices validate like untyped ones", func(t *testing.T) {
		t.Parallel()

		assert.True(t, v.Validate([]string{"a", "b"}))
		assert.False(t, Array(Number()).Validate([]string{"a"}))
		assert.True(t, Array(Number()).Validate([3]int{1, 2, 3}))
	})

	t.Run("non-sequences reject", func(t *testing.T) {
		t.Parallel()

		assert.False(t, v.Validate(nil))
		assert.False(t, v.Validate("ab"))
		assert.False(t, v.Validate(map[string]any{"0": "a"}))
	})
}

func TestTuple(t *testing.T) {
	t.Parallel()

	v := Tuple(String(), Number())

	t.Run("positionwise pairing", func(t *testing.T) {
		t.Parallel()

		assert.True(t, v.Validate([]any{"s", 42}))
		assert.False(t, v.Validate([]any{42, "s"}))
	})

	t.Run("length mismatch rejects without inspecting elements", func(t *testing.T) {
		t.Parallel()

		assert.False(t, v.Validate([]any{"s"}))
		assert.False(t, v.Validate([]any{"s", 42, true}))
		assert.False(t, v.Validate([]any{}))
	})

	t.Run("non-sequences reject", func(t *testing.T) {
		t.Parallel()

		assert.False(t, v.Validate(nil))
		assert.False(t, v.Validate("s4"))
		assert.False(t, v.Validate(map[string]any{}))
	})

	t.Run("empty tuple accepts only the empty sequence", func(t *testing.T) {
		t.Parallel()

		empty := Tuple()
		assert.True(t, empty.Validate([]any{}))
		assert.False(t, empty.Validate([]any{1}))
	})
}

func TestTupleExactness(t *testing.T) {
	t.Parallel()

	// tuple([V1..Vn])(seq) holds iff len(seq) == n and every Vi accepts
	// seq[i].
	v := Tuple(String(), Number(), Boolean())

	cases := []struct {
		name string
		seq  []any
		want bool
	}{
		{"all positions match", []any{"s", 1, true}, true},
		{"first position wrong", []any{1, 1, true}, false},
		{"middle position wrong", []any{"s", "1", true}, false},
		{"last position wrong", []any{"s", 1, 1}, false},
		{"too short", []any{"s", 1}, false},
		{"too long", []any{"s", 1, true, nil}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, v.Validate(tc.seq))
		})
	}
}
