package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    StringList
		wantErr bool
	}{
		{name: "array", input: `["番茄","鸡蛋"]`, want: StringList{"番茄", "鸡蛋"}},
		{name: "comma string", input: `"番茄, 鸡蛋"`, want: StringList{"番茄", "鸡蛋"}},
		{name: "blank entries dropped", input: `["", " 番茄 "]`, want: StringList{"番茄"}},
		{name: "empty string", input: `""`, want: StringList{}},
		{name: "null", input: `null`, want: nil},
		{name: "number", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringList_Join(t *testing.T) {
	assert.Equal(t, "番茄,鸡蛋", StringList{"番茄", "鸡蛋"}.Join())
	assert.Equal(t, "", StringList(nil).Join())
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("spice").Valid())
	assert.False(t, Category("").Valid())
}

func TestSearchResult_MarshalEmptyData(t *testing.T) {
	data, err := json.Marshal(SearchResult{Source: SourceAI})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"source":"ai","data":[]}`, string(data))
}

func TestJSON_ScanAndMarshal(t *testing.T) {
	var j JSON
	assert.NoError(t, j.Scan([]byte(`[{"name":"a"}]`)))
	out, err := json.Marshal(struct {
		Data JSON `json:"data"`
	}{j})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"name":"a"}]}`, string(out))

	assert.NoError(t, j.Scan(`{"x":1}`))
	assert.Equal(t, JSON(`{"x":1}`), j)

	assert.NoError(t, j.Scan(nil))
	out, err = json.Marshal(j)
	assert.NoError(t, err)
	assert.Equal(t, "null", string(out))

	assert.Error(t, j.Scan(42))
}
