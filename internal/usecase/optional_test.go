package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type optionalPayload struct {
	Name  Optional[string]  `json:"name"`
	Score Optional[float64] `json:"score"`
}

func TestOptional_AbsentField(t *testing.T) {
	var payload optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))

	assert.False(t, payload.Name.Set)
	assert.False(t, payload.Name.Valid)
}

func TestOptional_NullField(t *testing.T) {
	var payload optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &payload))

	assert.True(t, payload.Name.Set)
	assert.False(t, payload.Name.Valid)
	assert.Empty(t, payload.Name.Value)

	// The sibling field was absent and stays untouched.
	assert.False(t, payload.Score.Set)
}

func TestOptional_ValueField(t *testing.T) {
	var payload optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"probe","score":4.5}`), &payload))

	assert.True(t, payload.Name.Set)
	assert.True(t, payload.Name.Valid)
	assert.Equal(t, "probe", payload.Name.Value)

	assert.True(t, payload.Score.Valid)
	assert.Equal(t, 4.5, payload.Score.Value)
}

func TestOptional_TypeMismatch(t *testing.T) {
	var payload optionalPayload
	err := json.Unmarshal([]byte(`{"score":"not a number"}`), &payload)
	require.Error(t, err)
}

func TestOptional_MarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(optionalPayload{Name: Some("probe")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"probe","score":null}`, string(data))

	data, err = json.Marshal(optionalPayload{Name: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":null,"score":null}`, string(data))
}

func TestOptional_Constructors(t *testing.T) {
	some := Some(int64(7))
	assert.True(t, some.Set)
	assert.True(t, some.Valid)
	assert.Equal(t, int64(7), some.Value)

	null := Null[int64]()
	assert.True(t, null.Set)
	assert.False(t, null.Valid)
}
