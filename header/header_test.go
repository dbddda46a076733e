package header_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/valeko/httpval/header"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hname   string
		hvalue  string
		wantErr error
	}{
		{"simple", "Accept", "text/html", nil},
		{"custom", "X-Custom", "hello", nil},
		{"single char", "a", "", nil},
		{"all token chars", "!#$%&'*+-.^_`|~0aZ", "v", nil},
		{"empty name", "", "v", header.ErrInvalidName},
		{"space", "X Custom", "v", header.ErrInvalidName},
		{"at sign", "user@host", "v", header.ErrInvalidName},
		{"colon", "Accept:", "v", header.ErrInvalidName},
		{"ctl char", "X-\x01", "v", header.ErrInvalidName},
		{"non ascii", "Xü", "v", header.ErrInvalidName},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr, err := header.New(c.hname, c.hvalue)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("header.New(%q, %q) error = %v, want %v\ndiff (-got +want):\n%v",
					c.hname, c.hvalue, err, c.wantErr, diff)
			}
			if c.wantErr != nil {
				if !strings.Contains(err.Error(), c.hname) && c.hname != "" {
					t.Errorf("error %q does not name the candidate %q", err, c.hname)
				}
				return
			}
			if got := hdr.Name(); got != c.hname {
				t.Errorf("hdr.Name() = %q, want %q", got, c.hname)
			}
			if got := hdr.Value(); got != c.hvalue {
				t.Errorf("hdr.Value() = %q, want %q", got, c.hvalue)
			}
			if !hdr.IsValid() {
				t.Errorf("hdr.IsValid() = false, want true")
			}
		})
	}
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		hdr := header.MustNew("X-Custom", "abc")
		if got, want := hdr.String(), "X-Custom: abc"; got != want {
			t.Errorf("hdr.String() = %q, want %q", got, want)
		}
	})

	t.Run("invalid panics", func(t *testing.T) {
		t.Parallel()

		defer func() {
			if recover() == nil {
				t.Errorf("header.MustNew with invalid name did not panic")
			}
		}()
		header.MustNew("a b", "v")
	})
}

func TestHeader_Is(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		hdr   header.Header
		other string
		want  bool
	}{
		{"exact", header.MustNew("Content-Type", "text/html"), "Content-Type", true},
		{"lower", header.MustNew("Content-Type", "text/html"), "content-type", true},
		{"upper", header.MustNew("Content-Type", "text/html"), "CONTENT-TYPE", true},
		{"other", header.MustNew("Content-Type", "text/html"), "Content-Length", false},
		{"prefix", header.MustNew("Content-Type", "text/html"), "Content", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Is(c.other); got != c.want {
				t.Errorf("hdr.Is(%q) = %v, want %v", c.other, got, c.want)
			}
		})
	}
}

func TestHeader_Equal(t *testing.T) {
	t.Parallel()

	h := header.MustNew("X-Custom", "abc")

	cases := []struct {
		name string
		hdr  header.Header
		val  any
		want bool
	}{
		{"to nil", h, nil, false},
		{"to nil ptr", h, (*header.Header)(nil), false},
		{"to other type", h, "X-Custom: abc", false},
		{"match", h, header.MustNew("X-Custom", "abc"), true},
		{"match ptr", h, &h, true},
		{"name case folded", h, header.MustNew("x-CUSTOM", "abc"), true},
		{"value case differs", h, header.MustNew("X-Custom", "ABC"), false},
		{"value differs", h, header.MustNew("X-Custom", "def"), false},
		{"name differs", h, header.MustNew("X-Other", "abc"), false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Equal(c.val); got != c.want {
				t.Errorf("hdr.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestHeader_Hash(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		hdr1     header.Header
		hdr2     header.Header
		wantSame bool
	}{
		{"same", header.MustNew("X-Custom", "abc"), header.MustNew("X-Custom", "abc"), true},
		{"name case folded", header.MustNew("x-custom", "abc"), header.MustNew("X-CUSTOM", "abc"), true},
		{"value differs", header.MustNew("X-Custom", "abc"), header.MustNew("X-Custom", "def"), false},
		{"name differs", header.MustNew("X-Custom", "abc"), header.MustNew("X-Other", "abc"), false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got1, got2 := c.hdr1.Hash(), c.hdr2.Hash()
			if same := got1 == got2; same != c.wantSame {
				t.Errorf("hdr1.Hash() == hdr2.Hash() is %v, want %v (%#x, %#x)", same, c.wantSame, got1, got2)
			}
			// Equal headers must never hash apart.
			if c.hdr1.Equal(c.hdr2) && got1 != got2 {
				t.Errorf("equal headers hash differently: %#x != %#x", got1, got2)
			}
		})
	}
}

func TestHeader_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.Header
		want string
	}{
		{"zero", header.Header{}, ": "},
		{"plain", header.MustNew("X-Custom", "hello"), "X-Custom: hello"},
		{"empty value", header.MustNew("X-Custom", ""), "X-Custom: "},
		{"sensitive stays raw", header.Authorization("Bearer abc123"), "Authorization: Bearer abc123"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.String(); got != c.want {
				t.Errorf("hdr.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestHeader_Redacted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.Header
		want string
	}{
		{"plain", header.MustNew("X-Custom", "hello"), "X-Custom: hello"},
		{"authorization", header.Authorization("Bearer abc123"), "Authorization: ***"},
		{"authorization lowercased", header.MustNew("authorization", "Bearer abc123"), "authorization: ***"},
		{"cookie", header.MustNew("Cookie", "session=1"), "Cookie: ***"},
		{"set-cookie", header.MustNew("Set-Cookie", "session=1"), "Set-Cookie: ***"},
		{"proxy-authorization", header.ProxyAuthorization("Basic Zm9v"), "Proxy-Authorization: ***"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Redacted(); got != c.want {
				t.Errorf("hdr.Redacted() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestHeader_RenderTo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hdr     header.Header
		wantRes string
		wantErr error
	}{
		{"zero", header.Header{}, ": ", nil},
		{"full", header.MustNew("X-Custom", "abc"), "X-Custom: abc", nil},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var sb strings.Builder
			num, err := c.hdr.RenderTo(&sb)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("hdr.RenderTo(sb) error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got := sb.String(); got != c.wantRes {
				t.Errorf("sb.String() = %q, want %q", got, c.wantRes)
			}
			if num != len(c.wantRes) {
				t.Errorf("hdr.RenderTo(sb) num = %d, want %d", num, len(c.wantRes))
			}
		})
	}
}

func TestHeader_Format(t *testing.T) {
	t.Parallel()

	hdr := header.Authorization("Bearer abc123")

	cases := []struct {
		name   string
		format string
		want   string
	}{
		{"s", "%s", "Authorization: Bearer abc123"},
		{"plus s", "%+s", "Authorization: Bearer abc123"},
		{"q", "%q", `"Authorization: Bearer abc123"`},
		{"plus q", "%+q", `"Authorization: ***"`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := fmt.Sprintf(c.format, hdr); got != c.want {
				t.Errorf("fmt.Sprintf(%q, hdr) = %q, want %q", c.format, got, c.want)
			}
		})
	}
}

func TestHeader_LogValue(t *testing.T) {
	t.Parallel()

	if got, want := header.Authorization("Bearer abc123").LogValue().String(), "Authorization: ***"; got != want {
		t.Errorf("hdr.LogValue().String() = %q, want %q", got, want)
	}
	if got, want := header.MustNew("X-Custom", "hello").LogValue().String(), "X-Custom: hello"; got != want {
		t.Errorf("hdr.LogValue().String() = %q, want %q", got, want)
	}
}

func TestHeader_JSON(t *testing.T) {
	t.Parallel()

	t.Run("marshal", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(header.MustNew("X-Custom", "abc"))
		if err != nil {
			t.Fatalf("json.Marshal(hdr) error = %v", err)
		}
		if got, want := string(data), `{"name":"X-Custom","value":"abc"}`; got != want {
			t.Errorf("json.Marshal(hdr) = %s, want %s", got, want)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		t.Parallel()

		var hdr header.Header
		if err := json.Unmarshal([]byte(`{"name":"X-Custom","value":"abc"}`), &hdr); err != nil {
			t.Fatalf("json.Unmarshal error = %v", err)
		}
		if want := header.MustNew("X-Custom", "abc"); !hdr.Equal(want) {
			t.Errorf("unmarshaled header = %s, want %s", hdr, want)
		}
	})

	t.Run("unmarshal invalid name", func(t *testing.T) {
		t.Parallel()

		var hdr header.Header
		err := json.Unmarshal([]byte(`{"name":"a b","value":"abc"}`), &hdr)
		if diff := cmp.Diff(err, header.ErrInvalidName, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("json.Unmarshal error = %v, want %v\ndiff (-got +want):\n%v", err, header.ErrInvalidName, diff)
		}
	})
}
