package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/sevigo/snippet-warden/internal/core"
)

// ErrSyntax is returned by the engine when the snippet does not parse.
var ErrSyntax = errors.New("invalid syntax")

// FunctionComplexity is the cyclomatic complexity of one function, method
// or class.
type FunctionComplexity struct {
	Name       string
	Line       int
	Complexity int
}

// ComplexityEngine computes per-block complexity scores.
type ComplexityEngine interface {
	Functions(ctx context.Context, code string) ([]FunctionComplexity, error)
}

// ComplexityAnalyzer turns engine scores into report entries.
type ComplexityAnalyzer struct {
	engine     ComplexityEngine
	thresholds core.ComplexityThresholds
	logger     *slog.Logger
}

// NewComplexityAnalyzer creates an analyzer. A nil engine makes every call
// report that complexity analysis is unavailable.
func NewComplexityAnalyzer(engine ComplexityEngine, thresholds core.ComplexityThresholds, logger *slog.Logger) *ComplexityAnalyzer {
	return &ComplexityAnalyzer{
		engine:     engine,
		thresholds: thresholds,
		logger:     logger,
	}
}

// Analyze implements core.ComplexityAnalyzer. Functions at or below the
// moderate threshold produce no entry.
func (a *ComplexityAnalyzer) Analyze(ctx context.Context, code string) []string {
	if a.engine == nil {
		return []string{MsgComplexityUnavailable}
	}

	functions, err := a.engine.Functions(ctx, code)
	if err != nil {
		a.logger.Info("complexity analysis failed", "error", err)
		return []string{MsgComplexityFailedPrefix + err.Error()}
	}

	feedback := []string{}
	for _, fn := range functions {
		switch {
		case fn.Complexity > a.thresholds.High:
			feedback = append(feedback, fmt.Sprintf("⚠️ Function `%s` has high complexity (%d). Consider refactoring.", fn.Name, fn.Complexity))
		case fn.Complexity > a.thresholds.Moderate:
			feedback = append(feedback, fmt.Sprintf("⚠️ Function `%s` complexity is moderate (%d).", fn.Name, fn.Complexity))
		}
	}
	a.logger.Debug("complexity analysis finished", "functions", len(functions), "flagged", len(feedback))
	return feedback
}

// TreeSitterEngine scores Python blocks from a tree-sitter parse tree.
//
// Scoring follows radon's cyclomatic complexity rules: every function starts
// at 1 and each decision point adds 1. Closures do not add to the enclosing
// function and are not reported. A class scores the average of its methods
// plus one when it has more than one method.
//
// Thread Safety: safe for concurrent use; a parser is created per call.
type TreeSitterEngine struct{}

// NewTreeSitterEngine creates the Python complexity engine.
func NewTreeSitterEngine() *TreeSitterEngine {
	return &TreeSitterEngine{}
}

// Functions implements ComplexityEngine. Module level functions come first,
// then each class followed by its methods, named Class.method.
func (e *TreeSitterEngine) Functions(ctx context.Context, code string) ([]FunctionComplexity, error) {
	source := []byte(code)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing python: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w at line %d", ErrSyntax, firstErrorLine(root))
	}

	v := &blockVisitor{source: source}
	v.visit(root)

	out := v.functions
	for _, cls := range v.classes {
		out = append(out, cls.FunctionComplexity)
		out = append(out, cls.methods...)
	}
	return out, nil
}

type classBlock struct {
	FunctionComplexity
	methods []FunctionComplexity
}

// blockVisitor collects the function and class blocks of one scope.
type blockVisitor struct {
	source    []byte
	className string
	functions []FunctionComplexity
	classes   []classBlock
}

// visit returns the decision points below node that lie outside any function
// or class definition.
func (v *blockVisitor) visit(node *sitter.Node) int {
	count := 0
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "function_definition":
			v.functions = append(v.functions, v.function(child))
		case "class_definition":
			v.classes = append(v.classes, v.class(child))
		default:
			count += branches(child) + v.visit(child)
		}
	}
	return count
}

func (v *blockVisitor) function(node *sitter.Node) FunctionComplexity {
	name := fieldContent(node, "name", v.source)
	if v.className != "" {
		name = v.className + "." + name
	}

	complexity := 1
	if body := node.ChildByFieldName("body"); body != nil {
		// Closures land in the scratch visitor and are dropped.
		scope := &blockVisitor{source: v.source}
		complexity += scope.visit(body)
	}
	return FunctionComplexity{
		Name:       name,
		Line:       int(node.StartPoint().Row) + 1,
		Complexity: complexity,
	}
}

func (v *blockVisitor) class(node *sitter.Node) classBlock {
	name := fieldContent(node, "name", v.source)
	scope := &blockVisitor{source: v.source, className: name}

	total := 1
	if body := node.ChildByFieldName("body"); body != nil {
		total += scope.visit(body)
	}
	for _, m := range scope.functions {
		total += m.Complexity
	}

	complexity := total
	if n := len(scope.functions); n > 0 {
		complexity = total / n
		if n > 1 {
			complexity++
		}
	}

	return classBlock{
		FunctionComplexity: FunctionComplexity{
			Name:       name,
			Line:       int(node.StartPoint().Row) + 1,
			Complexity: complexity,
		},
		methods: scope.functions,
	}
}

// branches is the complexity node adds by itself, ignoring its children.
func branches(node *sitter.Node) int {
	switch node.Type() {
	case "if_statement", "elif_clause", "conditional_expression", "with_statement",
		"boolean_operator", "for_in_clause", "if_clause", "case_clause", "assert_statement":
		return 1
	case "for_statement", "while_statement":
		if hasChildOfType(node, "else_clause") {
			return 2
		}
		return 1
	case "try_statement":
		count := 0
		for i := 0; i < int(node.NamedChildCount()); i++ {
			switch node.NamedChild(i).Type() {
			case "except_clause", "except_group_clause", "else_clause":
				count++
			}
		}
		return count
	}
	return 0
}

func hasChildOfType(node *sitter.Node, nodeType string) bool {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if node.NamedChild(i).Type() == nodeType {
			return true
		}
	}
	return false
}

func fieldContent(node *sitter.Node, field string, source []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return "<anonymous>"
	}
	return child.Content(source)
}

func firstErrorLine(node *sitter.Node) int {
	if node.IsError() || node.IsMissing() {
		return int(node.StartPoint().Row) + 1
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.HasError() {
			return firstErrorLine(child)
		}
	}
	return int(node.StartPoint().Row) + 1
}
