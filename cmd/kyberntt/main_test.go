package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/Rohith04MVK/kyberntt/internal/negacyclic"
	"github.com/Rohith04MVK/kyberntt/internal/polyio"
	"github.com/Rohith04MVK/kyberntt/internal/selfcheck"
	"github.com/Rohith04MVK/kyberntt/ntt"
)

func TestMain(m *testing.M) {
	cli.OsExiter = func(int) {}
	cli.ErrWriter = io.Discard
	os.Exit(m.Run())
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"kyberntt"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func parse(t *testing.T, s string, f polyio.Format) *ntt.Poly {
	t.Helper()
	p, err := polyio.Read(strings.NewReader(s), f)
	require.NoError(t, err)
	return p
}

func TestZetas(t *testing.T) {
	out, err := run(t, "", "zetas", "--format", "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[-1044,-758,-359,"), out)

	out, err = run(t, "", "zetas")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "var zetas = [128]int16{\n\t-1044, -758, -359,"), out)
	assert.Equal(t, 16+2, strings.Count(out, "\n"))

	_, err = run(t, "", "zetas", "--format", "yaml")
	assert.Error(t, err)
}

func TestSample(t *testing.T) {
	out, err := run(t, "", "sample", "--seed", "kyberntt-kat")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `{"coeffs":[2940,597,702,1902,`), out)

	out, err = run(t, "", "sample", "--seed", "kyberntt-kat", "--eta", "2", "--format", "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `{"coeffs":[0,-1,-2,-1,`), out)

	out, err = run(t, "", "sample", "--seed", "kyberntt-kat", "--nonce", "1", "--format", "hex")
	require.NoError(t, err)
	p := parse(t, out, polyio.Hex)
	assert.Equal(t, int16(2023), p[0])

	_, err = run(t, "", "sample", "--nonce", "300")
	assert.Error(t, err)
	_, err = run(t, "", "sample", "--eta", "4")
	assert.Error(t, err)
}

func TestTransformRoundTrip(t *testing.T) {
	for _, format := range []string{"json", "hex"} {
		orig, err := run(t, "", "sample", "--seed", "cli", "--format", format)
		require.NoError(t, err)

		fwd, err := run(t, "", "ntt", "--in", writeFile(t, "p."+format, orig), "--format", format)
		require.NoError(t, err)
		back, err := run(t, fwd, "invntt", "--format", format)
		require.NoError(t, err)

		want := parse(t, orig, polyio.Format(format))
		got := parse(t, back, polyio.Format(format))
		assert.True(t, got.Equal(want), "format=%s", format)
	}
}

func TestNormalizeStdin(t *testing.T) {
	in := `{"coeffs":[-1,3329,6658` + strings.Repeat(",0", ntt.N-3) + `]}`
	out, err := run(t, in, "normalize")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `{"coeffs":[3328,0,0,0`), out)

	_, err = run(t, `{"coeffs":[1]}`, "normalize")
	assert.Error(t, err)
}

func TestBaseMulCommand(t *testing.T) {
	a, err := run(t, "", "sample", "--seed", "mul", "--nonce", "0")
	require.NoError(t, err)
	b, err := run(t, "", "sample", "--seed", "mul", "--nonce", "1")
	require.NoError(t, err)

	fa, err := run(t, a, "ntt")
	require.NoError(t, err)
	fb, err := run(t, b, "ntt")
	require.NoError(t, err)

	prod, err := run(t, "", "basemul", "--a", writeFile(t, "a.json", fa), "--b", writeFile(t, "b.json", fb))
	require.NoError(t, err)
	out, err := run(t, prod, "invntt-mont")
	require.NoError(t, err)

	want := negacyclic.Schoolbook(parse(t, a, polyio.JSON), parse(t, b, polyio.JSON))
	assert.True(t, parse(t, out, polyio.JSON).Equal(&want))

	_, err = run(t, "", "basemul", "--a", filepath.Join(t.TempDir(), "missing.json"), "--b", "x")
	assert.Error(t, err)
}

func TestToMontCommand(t *testing.T) {
	in := `{"coeffs":[1` + strings.Repeat(",0", ntt.N-1) + `]}`
	out, err := run(t, in, "tomont")
	require.NoError(t, err)
	p := parse(t, out, polyio.JSON)
	assert.Equal(t, ntt.Canonical(ntt.MontR), ntt.Canonical(p[0]))
}

func TestSelftest(t *testing.T) {
	out, err := run(t, "", "selftest", "--rounds", "2")
	require.NoError(t, err)
	for _, p := range selfcheck.Properties {
		assert.Contains(t, out, string(p))
	}
	assert.Contains(t, out, "2/2")
}

func TestBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounds.html")
	_, err := run(t, "", "bounds", "--rounds", "2", "--html", path)
	require.NoError(t, err)

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(html), "echarts")
	assert.Contains(t, string(html), "Kyber NTT magnitudes")
}

func TestBoundsChart(t *testing.T) {
	report := selfcheck.Report{
		Rounds: 1,
		Max: map[selfcheck.Stage]int{
			selfcheck.StageNTT:     100,
			selfcheck.StageInvNTT:  10,
			selfcheck.StageBaseMul: 1000,
		},
	}
	var buf bytes.Buffer
	require.NoError(t, boundsChart(report).Render(&buf))
	html := buf.String()
	for _, want := range []string{"observed", "bound", "basemul", "rounds=1"} {
		assert.Contains(t, html, want)
	}
}
