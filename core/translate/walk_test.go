package translate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleData() map[string]any {
	return map[string]any{
		"title":  "Hello",
		"count":  5,
		"nested": map[string]any{"remark": "World"},
	}
}

func TestTranslateData_FieldScoped(t *testing.T) {
	tr, backend, _ := newTestTranslator(t)

	in := sampleData()
	out := tr.TranslateData(context.Background(), in, Options{Target: "fr", Fields: []string{"title", "remark"}})

	assert.Equal(t, []string{"Hello", "World"}, backend.seen())
	assert.Equal(t, map[string]any{
		"title":  "HELLO@fr",
		"count":  5,
		"nested": map[string]any{"remark": "WORLD@fr"},
	}, out)
	assert.Equal(t, sampleData(), in)
}

func TestTranslateData_EmptyFieldsTranslatesAll(t *testing.T) {
	tr, backend, _ := newTestTranslator(t)

	out := tr.TranslateData(context.Background(), sampleData(), Options{Target: "fr"})

	assert.Equal(t, []string{"Hello", "World"}, backend.seen())
	assert.Equal(t, "HELLO@fr", out.(map[string]any)["title"])
	assert.Equal(t, 5, out.(map[string]any)["count"])
}

func TestTranslateData_UnlistedKeysUntouched(t *testing.T) {
	tr, backend, _ := newTestTranslator(t)

	in := map[string]any{
		"title": "Hello",
		"code":  "MATH-101",
		"meta":  map[string]any{"code": "X", "title": "Inner"},
	}
	out := tr.TranslateData(context.Background(), in, Options{Target: "fr", Fields: []string{"title"}}).(map[string]any)

	assert.Equal(t, []string{"Hello", "Inner"}, backend.seen())
	assert.Equal(t, "MATH-101", out["code"])
	assert.Equal(t, "X", out["meta"].(map[string]any)["code"])
}

func TestTranslateData_Sequences(t *testing.T) {
	ctx := context.Background()

	t.Run("AllStrings", func(t *testing.T) {
		tr, _, _ := newTestTranslator(t)
		out := tr.TranslateData(ctx, []any{"a", 1, []string{"b"}}, Options{Target: "fr"})
		assert.Equal(t, []any{"A@fr", 1, []string{"B@fr"}}, out)
	})

	t.Run("ElementsHaveNoFieldName", func(t *testing.T) {
		tr, backend, _ := newTestTranslator(t)
		in := map[string]any{
			"tags":  []any{"a", "b"},
			"items": []any{map[string]any{"title": "Hello", "sku": "x"}},
		}
		out := tr.TranslateData(ctx, in, Options{Target: "fr", Fields: []string{"title"}}).(map[string]any)

		assert.Equal(t, []string{"Hello"}, backend.seen())
		assert.Equal(t, []any{"a", "b"}, out["tags"])
		assert.Equal(t, "HELLO@fr", out["items"].([]any)[0].(map[string]any)["title"])
	})
}

type course struct {
	Title    string            `json:"title"`
	Code     string            `json:"code"`
	Credits  int               `json:"credits"`
	Notes    *note             `json:"notes,omitempty"`
	Labels   map[string]string `json:"labels"`
	Internal string            `json:"-"`
	Summary  string
	secret   string
}

type note struct {
	Remark string `json:"remark"`
}

func TestTranslateData_Structs(t *testing.T) {
	ctx := context.Background()

	in := course{
		Title:    "Algebra",
		Code:     "MATH-101",
		Credits:  4,
		Notes:    &note{Remark: "Bring a calculator"},
		Labels:   map[string]string{"title": "Core"},
		Internal: "hidden",
		Summary:  "Linear equations",
		secret:   "s",
	}

	t.Run("FieldScoped", func(t *testing.T) {
		tr, _, _ := newTestTranslator(t)
		out := tr.TranslateData(ctx, in, Options{Target: "fr", Fields: []string{"title", "remark", "Summary"}}).(course)

		assert.Equal(t, "ALGEBRA@fr", out.Title)
		assert.Equal(t, "MATH-101", out.Code)
		assert.Equal(t, 4, out.Credits)
		assert.Equal(t, "BRING A CALCULATOR@fr", out.Notes.Remark)
		assert.Equal(t, "CORE@fr", out.Labels["title"])
		assert.Equal(t, "hidden", out.Internal)
		assert.Equal(t, "LINEAR EQUATIONS@fr", out.Summary)
		assert.Equal(t, "s", out.secret)
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		tr, _, _ := newTestTranslator(t)
		out := tr.TranslateData(ctx, &in, Options{Target: "fr"}).(*course)

		assert.Equal(t, "ALGEBRA@fr", out.Title)
		assert.Equal(t, "Algebra", in.Title)
		assert.Equal(t, "Bring a calculator", in.Notes.Remark)
		assert.Equal(t, "Core", in.Labels["title"])
		assert.NotSame(t, in.Notes, out.Notes)
	})
}

func TestTranslateData_Scalars(t *testing.T) {
	ctx := context.Background()
	tr, backend, _ := newTestTranslator(t)

	assert.Nil(t, tr.TranslateData(ctx, nil, Options{Target: "fr"}))
	assert.Equal(t, 42, tr.TranslateData(ctx, 42, Options{Target: "fr"}))
	assert.Equal(t, true, tr.TranslateData(ctx, true, Options{Target: "fr"}))
	assert.Equal(t, "HELLO@fr", tr.TranslateData(ctx, "Hello", Options{Target: "fr"}))
	assert.Equal(t, "Hello", tr.TranslateData(ctx, "Hello", Options{Target: "fr", Fields: []string{"title"}}))
	assert.Equal(t, []string{"Hello"}, backend.seen())
}

func TestTranslateData_NilsPreserved(t *testing.T) {
	tr, _, _ := newTestTranslator(t)

	in := map[string]any{"title": nil, "list": []any(nil), "ptr": (*note)(nil)}
	out := tr.TranslateData(context.Background(), in, Options{Target: "fr"}).(map[string]any)

	assert.Contains(t, out, "title")
	assert.Nil(t, out["title"])
	assert.Nil(t, out["list"])
	assert.Nil(t, out["ptr"])
}

type node struct {
	Name string `json:"name"`
	Next *node  `json:"next"`
}

func TestTranslateData_CycleIsBounded(t *testing.T) {
	tr, _, _ := newTestTranslator(t)

	n := &node{Name: "loop"}
	n.Next = n

	out := tr.TranslateData(context.Background(), n, Options{Target: "fr", UseCache: true}).(*node)
	assert.Equal(t, "LOOP@fr", out.Name)
	assert.Equal(t, "loop", n.Name)
}
