package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"{\"a\":1}", `{"a":1}`},
		{"  ```\n[1,2]\n```  ", "[1,2]"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StripCodeFence(c.in))
	}
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Feedback string `json:"feedback"`
	}
	err := DecodeJSON("```json\n{\"feedback\":\"좋아요\"}\n```", &out)
	assert.NoError(t, err)
	assert.Equal(t, "좋아요", out.Feedback)
}

func TestDecodeJSON_Invalid(t *testing.T) {
	var out map[string]any
	assert.Error(t, DecodeJSON("죄송합니다, JSON을 만들 수 없어요", &out))
	assert.Error(t, DecodeJSON("", &out))
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("```\n4500\n```")
	assert.NoError(t, err)
	assert.Equal(t, 4500, n)

	_, err = ParseInt("약 4,500원")
	assert.Error(t, err)
}
