package driver

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"reckon/internal/source"
)

// LineResult содержит результат вычисления одной строки файла выражений.
type LineResult struct {
	Line   int    // 1-based номер строки в файле
	Expr   string // обрезанный текст выражения
	Result *Result
}

// EvalFile evaluates every non-blank line of an expression file. Lines are
// independent and evaluation is pure, so they run in parallel; the returned
// slice is in file order regardless of completion order.
func EvalFile(ctx context.Context, path string, jobs, maxDiagnostics int) ([]LineResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	lines := strings.Split(string(file.Content), "\n")
	exprs := make([]LineResult, 0, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		exprs = append(exprs, LineResult{Line: i + 1, Expr: trimmed})
	}

	if err := EvalAll(ctx, exprs, jobs, maxDiagnostics); err != nil {
		return nil, err
	}
	return exprs, nil
}

// EvalAll fills in Result for each pending LineResult in place. Entries that
// already carry a Result are left untouched.
func EvalAll(ctx context.Context, exprs []LineResult, jobs, maxDiagnostics int) error {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if len(exprs) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(exprs)))

	for i := range exprs {
		if exprs[i].Result != nil {
			continue
		}
		g.Go(func(i int) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				exprs[i].Result = EvaluateExpression(exprs[i].Expr, maxDiagnostics)
				return nil
			}
		}(i))
	}

	return g.Wait()
}
