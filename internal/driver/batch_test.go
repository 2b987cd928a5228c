package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"reckon/internal/driver"
)

func writeExprFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exprs.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEvalFile(t *testing.T) {
	path := writeExprFile(t, "2 + 2\n\n  3 * 3  \n\n5 / 0\n")

	results, err := driver.EvalFile(context.Background(), path, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	// пустые строки пропускаются, нумерация сохраняется файловая
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Line != 1 || results[0].Expr != "2 + 2" {
		t.Errorf("results[0] = %d %q", results[0].Line, results[0].Expr)
	}
	if !results[0].Result.OK || results[0].Result.Value != 4 {
		t.Errorf("line 1: got (%v, %v)", results[0].Result.Value, results[0].Result.OK)
	}

	if results[1].Line != 3 || !results[1].Result.OK || results[1].Result.Value != 9 {
		t.Errorf("line 3: got line=%d (%v, %v)",
			results[1].Line, results[1].Result.Value, results[1].Result.OK)
	}

	if results[2].Line != 5 {
		t.Errorf("results[2].Line = %d, want 5", results[2].Line)
	}
	if results[2].Result.OK {
		t.Error("line 5: expected division by zero failure")
	}
	if msg := results[2].Result.UserMessage(); msg != "Division by zero" {
		t.Errorf("line 5: message = %q", msg)
	}
}

func TestEvalFileMissing(t *testing.T) {
	_, err := driver.EvalFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), 1, 0)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEvalAllOrderPreserved(t *testing.T) {
	exprs := []driver.LineResult{
		{Line: 1, Expr: "1 + 1"},
		{Line: 2, Expr: "2 + 2"},
		{Line: 3, Expr: "3 + 3"},
		{Line: 4, Expr: "4 + 4"},
	}
	if err := driver.EvalAll(context.Background(), exprs, 8, 0); err != nil {
		t.Fatal(err)
	}
	for i, lr := range exprs {
		want := float64((i + 1) * 2)
		if lr.Result == nil || !lr.Result.OK || lr.Result.Value != want {
			t.Errorf("exprs[%d]: got %+v, want %v", i, lr.Result, want)
		}
	}
}

// Уже вычисленные элементы не перевычисляются.
func TestEvalAllSkipsEvaluated(t *testing.T) {
	pre := driver.EvaluateExpression("10 * 10", 0)
	exprs := []driver.LineResult{
		{Line: 1, Expr: "10 * 10", Result: pre},
		{Line: 2, Expr: "5 - 3"},
	}
	if err := driver.EvalAll(context.Background(), exprs, 1, 0); err != nil {
		t.Fatal(err)
	}
	if exprs[0].Result != pre {
		t.Error("pre-evaluated entry was replaced")
	}
	if exprs[1].Result == nil || exprs[1].Result.Value != 2 {
		t.Errorf("exprs[1] = %+v", exprs[1].Result)
	}
}

func TestEvalAllEmpty(t *testing.T) {
	if err := driver.EvalAll(context.Background(), nil, 4, 0); err != nil {
		t.Fatal(err)
	}
}

func TestEvalAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exprs := []driver.LineResult{{Line: 1, Expr: "1 + 1"}}
	if err := driver.EvalAll(ctx, exprs, 1, 0); err == nil {
		t.Fatal("expected context error")
	}
}
