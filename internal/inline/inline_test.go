package inline

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitDelimiter(t *testing.T) {
	cases := []struct {
		name  string
		input []Span
		delim string
		kind  Kind
		want  []Span
	}{
		{
			name:  "bold",
			input: []Span{PlainSpan("This is text with a **bolded** word")},
			delim: "**",
			kind:  Bold,
			want: []Span{
				PlainSpan("This is text with a "),
				NewSpan(Bold, "bolded"),
				PlainSpan(" word"),
			},
		},
		{
			name:  "bold twice, trailing delimiter",
			input: []Span{PlainSpan("This is text with a **bolded** word and **another**")},
			delim: "**",
			kind:  Bold,
			want: []Span{
				PlainSpan("This is text with a "),
				NewSpan(Bold, "bolded"),
				PlainSpan(" word and "),
				NewSpan(Bold, "another"),
			},
		},
		{
			name:  "bold multiword",
			input: []Span{PlainSpan("This is text with a **bolded word** and **another**")},
			delim: "**",
			kind:  Bold,
			want: []Span{
				PlainSpan("This is text with a "),
				NewSpan(Bold, "bolded word"),
				PlainSpan(" and "),
				NewSpan(Bold, "another"),
			},
		},
		{
			name:  "italic",
			input: []Span{PlainSpan("This is text with an *italic* word")},
			delim: "*",
			kind:  Italic,
			want: []Span{
				PlainSpan("This is text with an "),
				NewSpan(Italic, "italic"),
				PlainSpan(" word"),
			},
		},
		{
			name:  "code",
			input: []Span{PlainSpan("This is text with a `code block` word")},
			delim: "`",
			kind:  Code,
			want: []Span{
				PlainSpan("This is text with a "),
				NewSpan(Code, "code block"),
				PlainSpan(" word"),
			},
		},
		{
			name:  "non plain spans untouched",
			input: []Span{NewSpan(Bold, "a *b* c"), PlainSpan("d")},
			delim: "*",
			kind:  Italic,
			want:  []Span{NewSpan(Bold, "a *b* c"), PlainSpan("d")},
		},
		{
			name:  "no delimiter",
			input: []Span{PlainSpan("This is just a sentence")},
			delim: "*",
			kind:  Italic,
			want:  []Span{PlainSpan("This is just a sentence")},
		},
		{
			name:  "adjacent delimiters dropped",
			input: []Span{PlainSpan("a****b")},
			delim: "**",
			kind:  Bold,
			want:  []Span{PlainSpan("a"), PlainSpan("b")},
		},
		{
			name:  "empty input",
			input: []Span{},
			delim: "*",
			kind:  Italic,
			want:  []Span{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SplitDelimiter(tc.input, tc.delim, tc.kind)
			if err != nil {
				t.Fatalf("SplitDelimiter: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestSplitDelimiterUnclosed(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		delim string
		kind  Kind
	}{
		{name: "italic", text: "This is a *test sentence", delim: "*", kind: Italic},
		{name: "code", text: "This is a `test sentence", delim: "`", kind: Code},
		{name: "bold", text: "a **b** **c", delim: "**", kind: Bold},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SplitDelimiter([]Span{PlainSpan(tc.text)}, tc.delim, tc.kind)
			if err == nil {
				t.Fatal("expected markup error")
			}
			if !IsMarkupError(err) {
				t.Fatalf("expected markup error category, got %v", err)
			}
			if !errors.Is(err, ErrUnclosedDelimiter) {
				t.Fatalf("expected ErrUnclosedDelimiter, got %v", err)
			}
		})
	}
}

func TestExtractImages(t *testing.T) {
	cases := []struct {
		name string
		text string
		want [][2]string
	}{
		{name: "none", text: "This is a text without any images"},
		{
			name: "single",
			text: "This is a text with a single image ![alt text](https://example.com/image.jpg)",
			want: [][2]string{{"alt text", "https://example.com/image.jpg"}},
		},
		{
			name: "multiple",
			text: "images ![alt1](https://example.com/image1.jpg) and ![alt2](https://example.com/image2.jpg)",
			want: [][2]string{
				{"alt1", "https://example.com/image1.jpg"},
				{"alt2", "https://example.com/image2.jpg"},
			},
		},
		{name: "missing open paren", text: "an image ![]https://example.com/image.gif)"},
		{name: "missing url", text: "an image that has no image link ![alt text]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertMatches(t, ExtractImages(tc.text), tc.want)
		})
	}
}

func TestExtractLinks(t *testing.T) {
	cases := []struct {
		name string
		text string
		want [][2]string
	}{
		{name: "none", text: "This is a text without any links"},
		{
			name: "single",
			text: "This is a [single link](https://singlelink.com)",
			want: [][2]string{{"single link", "https://singlelink.com"}},
		},
		{
			name: "multiple",
			text: "This is a [link](https://example.com) and [another link](https://another.com)",
			want: [][2]string{
				{"link", "https://example.com"},
				{"another link", "https://another.com"},
			},
		},
		{
			name: "adjacent",
			text: "[a](https://a.com)[b](https://b.com)",
			want: [][2]string{{"a", "https://a.com"}, {"b", "https://b.com"}},
		},
		{
			name: "images ignored",
			text: "![img](https://i.com/x.png) and [link](https://l.com)",
			want: [][2]string{{"link", "https://l.com"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertMatches(t, ExtractLinks(tc.text), tc.want)
		})
	}
}

func TestSplitImages(t *testing.T) {
	cases := []struct {
		name  string
		input []Span
		want  []Span
	}{
		{name: "empty", input: []Span{}, want: []Span{}},
		{
			name:  "no images",
			input: []Span{PlainSpan("This is a text without any images")},
			want:  []Span{PlainSpan("This is a text without any images")},
		},
		{
			name:  "single trailing image",
			input: []Span{PlainSpan("This is text with an ![image](https://www.example.com/image.png)")},
			want: []Span{
				PlainSpan("This is text with an "),
				ImageSpan("image", "https://www.example.com/image.png"),
			},
		},
		{
			name:  "image only",
			input: []Span{PlainSpan("![x](http://u)")},
			want:  []Span{ImageSpan("x", "http://u")},
		},
		{
			name: "two images",
			input: []Span{PlainSpan(
				"This is text with an ![image](https://i.imgur.com/zjjcJKZ.png) and another ![second image](https://i.imgur.com/3elNhQu.png)",
			)},
			want: []Span{
				PlainSpan("This is text with an "),
				ImageSpan("image", "https://i.imgur.com/zjjcJKZ.png"),
				PlainSpan(" and another "),
				ImageSpan("second image", "https://i.imgur.com/3elNhQu.png"),
			},
		},
		{
			name:  "malformed left literal",
			input: []Span{PlainSpan("broken ![alt](http://u")},
			want:  []Span{PlainSpan("broken ![alt](http://u")},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitImages(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestSplitLinks(t *testing.T) {
	input := []Span{PlainSpan(
		"This is text with a [link](https://boot.dev) and [another link](https://blog.boot.dev) with text that follows",
	)}
	want := []Span{
		PlainSpan("This is text with a "),
		LinkSpan("link", "https://boot.dev"),
		PlainSpan(" and "),
		LinkSpan("another link", "https://blog.boot.dev"),
		PlainSpan(" with text that follows"),
	}

	got := SplitLinks(input)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestTokenize(t *testing.T) {
	got, err := Tokenize(
		"This is **text** with an *italic* word and a `code block` and an ![image](https://i.imgur.com/zjjcJKZ.png) and a [link](https://boot.dev)",
	)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	want := []Span{
		PlainSpan("This is "),
		NewSpan(Bold, "text"),
		PlainSpan(" with an "),
		NewSpan(Italic, "italic"),
		PlainSpan(" word and a "),
		NewSpan(Code, "code block"),
		PlainSpan(" and an "),
		ImageSpan("image", "https://i.imgur.com/zjjcJKZ.png"),
		PlainSpan(" and a "),
		LinkSpan("link", "https://boot.dev"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestTokenizeBoldBeforeItalic(t *testing.T) {
	got, err := Tokenize("**bolded** and *slanted*")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []Span{
		NewSpan(Bold, "bolded"),
		PlainSpan(" and "),
		NewSpan(Italic, "slanted"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestTokenizeUnclosedDelimiter(t *testing.T) {
	if _, err := Tokenize("a *b"); !IsMarkupError(err) {
		t.Fatalf("expected markup error, got %v", err)
	}
	if _, err := Tokenize("a *b*"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	got, err := Tokenize("")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no spans, got %#v", got)
	}
}

func TestTokenizeRoundTripsVisibleText(t *testing.T) {
	cases := map[string]string{
		"plain text":                           "plain text",
		"a **b** c":                            "a b c",
		"*x* and `y`":                          "x and y",
		"see [docs](https://d.dev) now":        "see docs now",
		"![logo](/l.png) **bold** [a](b) tail": "logo bold a tail",
	}

	for input, want := range cases {
		spans, err := Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", input, err)
		}
		if got := Text(spans); got != want {
			t.Fatalf("Text(Tokenize(%q)) = %q, want %q", input, got, want)
		}
	}
}

func TestKindTargets(t *testing.T) {
	for _, kind := range []Kind{Plain, Bold, Italic, Code} {
		if kind.HasTarget() {
			t.Fatalf("expected %s to carry no target", kind)
		}
	}
	for _, kind := range []Kind{Image, Link} {
		if !kind.HasTarget() {
			t.Fatalf("expected %s to carry a target", kind)
		}
	}
}

func assertMatches(t *testing.T, got []Match, want [][2]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d matches, got %d (%#v)", len(want), len(got), got)
	}
	for i, m := range got {
		if m.Text != want[i][0] || m.URL != want[i][1] {
			t.Fatalf("match %d: expected (%q, %q), got (%q, %q)", i, want[i][0], want[i][1], m.Text, m.URL)
		}
	}
}
