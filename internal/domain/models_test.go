package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestQuestionCountUnmarshal(t *testing.T) {
	cases := map[string]QuestionCount{
		`5`:      5,
		`"10"`:   10,
		`"auto"`: 0,
		`null`:   0,
		`20`:     MaxQuestionCount,
	}
	for raw, want := range cases {
		var c QuestionCount
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if c != want {
			t.Fatalf("%s: expected %d, got %d", raw, want, c)
		}
	}

	for _, raw := range []string{`-1`, `21`, `100000`, `"lots"`} {
		var c QuestionCount
		if err := json.Unmarshal([]byte(raw), &c); !errors.Is(err, ErrInvalidQuestionCount) {
			t.Fatalf("%s: expected invalid count, got %v", raw, err)
		}
	}
}
