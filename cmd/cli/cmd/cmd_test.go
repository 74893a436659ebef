package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xuri/excelize/v2"
)

// run executes the root command with fresh flag values and a config path
// that does not exist, so every run starts from the built-in defaults.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	cfg := filepath.Join(t.TempDir(), "missing.json")

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeListing(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "rent-cost version") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestTemplatePipesIntoCalc(t *testing.T) {
	template, err := run(t, "", "template")
	if err != nil {
		t.Fatalf("template failed: %v", err)
	}
	if !strings.HasPrefix(template, `{"rent":{"amount":50000,"unit":0}`) {
		t.Fatalf("unexpected template: %s", template)
	}

	out, err := run(t, template, "calc", "--format", "json", "-")
	if err != nil {
		t.Fatalf("calc failed: %v", err)
	}

	var report struct {
		Entries []struct {
			Name   string `json:"name"`
			Result struct {
				TotalCost int64 `json:"total_cost"`
			} `json:"result"`
		} `json:"entries"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(report.Entries) != 1 || report.Entries[0].Result.TotalCost != 1366000 {
		t.Errorf("unexpected report: %+v", report)
	}
	if report.Entries[0].Name != "stdin" {
		t.Errorf("expected stdin listing name, got %q", report.Entries[0].Name)
	}
}

func TestTemplateFormats(t *testing.T) {
	for _, format := range []string{"yaml", "hcl"} {
		t.Run(format, func(t *testing.T) {
			out, err := run(t, "", "template", "--format", format, "--name", "sample")
			if err != nil {
				t.Fatalf("template failed: %v", err)
			}
			path := writeListing(t, "sample."+format, out)

			calc, err := run(t, "", "calc", "--format", "cli", path)
			if err != nil {
				t.Fatalf("calc failed: %v", err)
			}
			if !strings.Contains(calc, "sample") || !strings.Contains(calc, "¥1,366,000") {
				t.Errorf("unexpected calc output:\n%s", calc)
			}
		})
	}
}

func TestCalcInvalidDuration(t *testing.T) {
	path := writeListing(t, "bad.yaml", "fees:\n  lease_period:\n    amount: 0\n")

	_, err := run(t, "", "calc", path)
	if err == nil || !strings.Contains(err.Error(), "lease_period") {
		t.Errorf("expected lease_period error, got %v", err)
	}
}

func TestCompare(t *testing.T) {
	a := writeListing(t, "a.yaml", "name: expensive\nfees:\n  rent:\n    amount: 80000\n")
	b := writeListing(t, "b.yaml", "name: cheap\nfees:\n  rent:\n    amount: 45000\n")

	out, err := run(t, "", "compare", "--format", "cli", a, b)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	first := strings.Index(out, "1. cheap")
	second := strings.Index(out, "2. expensive")
	if first < 0 || second < first {
		t.Errorf("expected cheap ranked first:\n%s", out)
	}
}

func TestCompareReportsFailures(t *testing.T) {
	good := writeListing(t, "good.yaml", "fees:\n  rent:\n    amount: 45000\n")
	bad := writeListing(t, "bad.yaml", "fees:\n  contract_period:\n    amount: 0\n")

	out, err := run(t, "", "compare", "--format", "cli", good, bad)
	if err == nil {
		t.Fatal("expected error when a listing fails")
	}
	if !strings.Contains(out, "✗ bad") {
		t.Errorf("expected failure line in output:\n%s", out)
	}
}

func TestCompareXLSX(t *testing.T) {
	a := writeListing(t, "a.yaml", "fees:\n  rent:\n    amount: 80000\n")
	b := writeListing(t, "b.yaml", "fees:\n  rent:\n    amount: 45000\n")

	if _, err := run(t, "", "compare", "--format", "xlsx", a, b); err == nil {
		t.Error("expected error writing xlsx to stdout")
	}

	report := filepath.Join(t.TempDir(), "report.xlsx")
	if _, err := run(t, "", "compare", "--format", "xlsx", "--details", "--output", report, a, b); err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	book, err := excelize.OpenFile(report)
	if err != nil {
		t.Fatalf("report is not a workbook: %v", err)
	}
	defer book.Close()

	if got := len(book.GetSheetList()); got != 3 {
		t.Errorf("expected 3 sheets, got %d", got)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	resetFlags(rootCmd)
	path := filepath.Join(t.TempDir(), "config.json")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error when config exists")
	}

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "config", "show"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out.String(), `"max_workers": 4`) {
		t.Errorf("unexpected config output:\n%s", out.String())
	}
}
