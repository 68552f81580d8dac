package tasks

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"objkit/codec"
	"objkit/config"
	"objkit/selector"
	"objkit/state"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

// run executes single subcommand the same way program does and returns its output.
func run(ctx context.Context, stdin string, sub *cli.Command, args ...string) (string, error) {
	var out bytes.Buffer
	root := &cli.Command{
		Name:     "objkit",
		Writer:   &out,
		Reader:   strings.NewReader(stdin),
		Commands: []*cli.Command{sub},
	}
	err := root.Run(ctx, append([]string{"objkit", sub.Name}, args...))
	return out.String(), err
}

func areaCmd() *cli.Command {
	return &cli.Command{Name: "area", Action: Area}
}

func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:   "encode",
		Flags:  []cli.Flag{&cli.StringFlag{Name: "format"}},
		Action: Encode,
	}
}

func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:   "decode",
		Flags:  []cli.Flag{&cli.StringFlag{Name: "format"}},
		Action: Decode,
	}
}

func selectorCmd() *cli.Command {
	return &cli.Command{
		Name: "selector",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "lint"},
			&cli.BoolFlag{Name: "strict"},
			&cli.StringSliceFlag{Name: "rule"},
		},
		Action: Selector,
	}
}

func TestArea(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "integers", args: []string{"10", "20"}, want: "10x20 200\n"},
		{name: "fractions", args: []string{"2.5", "4"}, want: "2.5x4 10\n"},
		{name: "extra argument", args: []string{"1", "2", "3"}, want: "1x2 2\n"},
		{name: "missing height", args: []string{"10"}, wantErr: true},
		{name: "not a number", args: []string{"ten", "20"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(ctx, "", areaCmd(), tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Area() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Area() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArea_Cancelled(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	if _, err := run(ctx, "", areaCmd(), "1", "2"); !errors.Is(err, context.Canceled) {
		t.Errorf("Area() error = %v, want context.Canceled", err)
	}
}

func TestEncode(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "json default", args: []string{`[1, 2, 3]`}, want: "[1,2,3]\n"},
		{name: "sorted keys", args: []string{`{"b":1,"a":2}`}, want: "{\"a\":2,\"b\":1}\n"},
		{name: "yaml", args: []string{"--format", "yaml", `{"width":1}`}, want: "width: 1\n"},
		{name: "cbor as hex", args: []string{"--format", "cbor", `["a",true]`}, want: "826161f5\n"},
		{name: "stdin", stdin: " [true] \n", args: []string{"-"}, want: "[true]\n"},
		{name: "stdin no argument", stdin: `"x"`, want: "\"x\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(ctx, tt.stdin, encodeCmd(), tt.args...)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	_, err := run(ctx, "", encodeCmd(), "{not json")
	var pe *codec.ParseError
	if !errors.As(err, &pe) || pe.Codec != "json" {
		t.Errorf("Encode() error = %v, want json ParseError", err)
	}

	if _, err := run(ctx, "", encodeCmd(), "--format", "xml", "1"); !errors.Is(err, codec.ErrInvalidFormat) {
		t.Errorf("Encode() error = %v, want ErrInvalidFormat", err)
	}
}

func TestEncode_ConfigFormat(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Codec.Format = codec.FormatYaml

	got, err := run(ctx, "", encodeCmd(), `{"a":[1]}`)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got != "a:\n    - 1\n" {
		t.Errorf("Encode() = %q", got)
	}
}

func TestDecode(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "json", args: []string{`{"width":10,"height":20}`}, want: "10x20 200\n"},
		{name: "missing field keeps default", args: []string{`{"width":3}`}, want: "3x0 0\n"},
		{name: "yaml", args: []string{"--format", "yaml", "width: 2\nheight: 4"}, want: "2x4 8\n"},
		// {"height": 3, "width": 2}
		{name: "cbor hex", args: []string{"--format", "cbor", "a2666865696768740365776964746802"}, want: "2x3 6\n"},
		{name: "bad hex", args: []string{"--format", "cbor", "zz"}, wantErr: true},
		{name: "bad json", args: []string{`{"width":`}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(ctx, "", decodeCmd(), tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeDecode_Ion(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	encoded, err := run(ctx, "", encodeCmd(), "--format", "ion", `{"width":1.5,"height":2}`)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := run(ctx, "", decodeCmd(), "--format", "ion", strings.TrimSpace(encoded))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "1.5x2 3\n" {
		t.Errorf("Decode() = %q, want %q", got, "1.5x2 3\n")
	}
}

func TestSelector(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "compound",
			args: []string{"id=main", "class=container", "class=editable"},
			want: "#main.container.editable\n",
		},
		{
			name: "attribute alias",
			args: []string{"element=a", `attr=href$=".png"`, "pseudo-class=focus"},
			want: "a[href$=\".png\"]:focus\n",
		},
		{
			name: "combinators",
			args: []string{"element=a", "+", "element=b", "~", "element=c", "descendant", "element=d"},
			want: "a + b ~ c   d\n",
		},
		{
			name: "child",
			args: []string{"element=ul", ">", "element=li", "pseudo-element=before"},
			want: "ul > li::before\n",
		},
		{
			name: "rule",
			args: []string{"--rule", "Color=Red", "--rule", "margin = 0", "--rule", "width=1.50EM", "element=p", "class=note"},
			want: "p.note {\n  color: red;\n  margin: 0;\n  width: 1.5em;\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(ctx, "", selectorCmd(), tt.args...)
			if err != nil {
				t.Fatalf("Selector() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Selector() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelector_Errors(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
		errText string
	}{
		{name: "order", args: []string{"id=main", "element=a"}, wantErr: selector.ErrOrder},
		{name: "duplicate", args: []string{"id=a", "id=b"}, wantErr: selector.ErrDuplicatePart},
		{name: "duplicate across combinator", args: []string{"id=a", "id=b", ">", "element=p"}, wantErr: selector.ErrDuplicatePart},
		{name: "unknown kind", args: []string{"tag=a"}, wantErr: selector.ErrInvalidCategory},
		{name: "no kind", args: []string{"a"}, errText: "expected kind=value"},
		{name: "no parts", errText: "no selector parts"},
		{name: "dangling combinator", args: []string{"element=a", ">"}, errText: "combinator must be surrounded"},
		{name: "leading combinator", args: []string{"+", "element=a"}, errText: "combinator must be surrounded"},
		{name: "bad rule", args: []string{"--rule", "color", "element=a"}, errText: "expected property=value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(ctx, "", selectorCmd(), tt.args...)
			if err == nil {
				t.Fatal("Selector() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Selector() error = %v, want %v", err, tt.wantErr)
			}
			if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("Selector() error = %v, want it to contain %q", err, tt.errText)
			}
		})
	}
}

func TestSelector_Lint(t *testing.T) {
	ctx, env := setupTestEnv(t)

	// builder does not validate values, only tokenizer catches this
	args := []string{"element=a", "attr=href]"}

	got, err := run(ctx, "", selectorCmd(), args...)
	if err != nil {
		t.Fatalf("Selector() error = %v", err)
	}
	if got != "a[href]]\n" {
		t.Errorf("Selector() = %q", got)
	}

	env.Cfg.Selector.Strict = true
	if _, err := run(ctx, "", selectorCmd(), args...); err == nil || !strings.Contains(err.Error(), "did not pass lint") {
		t.Errorf("Selector() strict error = %v", err)
	}
	if _, err := run(ctx, "", selectorCmd(), append([]string{"--lint=false"}, args...)...); err != nil {
		t.Errorf("Selector() with lint disabled error = %v", err)
	}

	env.Cfg.Selector.Lint = false
	if _, err := run(ctx, "", selectorCmd(), append([]string{"--rule", "color=red"}, args...)...); err != nil {
		t.Errorf("Selector() rule with lint disabled error = %v", err)
	}
}

func TestSelector_LintValues(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Selector.Strict = true

	_, err := run(ctx, "", selectorCmd(), "--rule", "width=10", "element=div")
	if err == nil || !strings.Contains(err.Error(), "non-zero length '10' needs a unit") {
		t.Errorf("Selector() error = %v", err)
	}

	got, err := run(ctx, "", selectorCmd(), "--rule", "width=10px", "element=div")
	if err != nil {
		t.Fatalf("Selector() error = %v", err)
	}
	if got != "div {\n  width: 10px;\n}\n" {
		t.Errorf("Selector() = %q", got)
	}
}
