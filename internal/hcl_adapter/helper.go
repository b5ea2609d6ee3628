package hcl_adapter

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. Omitted optional attributes decode to zero-width placeholder
// expressions, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// objectAttributes evaluates expr without variables and returns its
// attributes. The expression must be an object or map.
func objectAttributes(expr hcl.Expression) (map[string]cty.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("%s: expected an object, got %s", expr.Range(), ty.FriendlyName())
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("%s: value is not known", expr.Range())
	}
	return val.AsValueMap(), nil
}

// referenceString renders an edge endpoint. Bare references like
// stage.a[1].Out are rendered back to text; anything else must evaluate to
// a string.
func referenceString(expr hcl.Expression) (string, error) {
	if traversal, diags := hcl.AbsTraversalForExpr(expr); !diags.HasErrors() {
		return renderTraversal(traversal)
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.Type().Equals(cty.String) {
		return "", fmt.Errorf("%s: connector reference must be a string or a reference", expr.Range())
	}
	return val.AsString(), nil
}

func renderTraversal(traversal hcl.Traversal) (string, error) {
	var b strings.Builder
	for _, step := range traversal {
		switch s := step.(type) {
		case hcl.TraverseRoot:
			b.WriteString(s.Name)
		case hcl.TraverseAttr:
			b.WriteString(".")
			b.WriteString(s.Name)
		case hcl.TraverseIndex:
			if !s.Key.Type().Equals(cty.Number) {
				return "", fmt.Errorf("%s: only numeric indexes are allowed in references", s.SrcRange)
			}
			idx, accuracy := s.Key.AsBigFloat().Int64()
			if accuracy != big.Exact || idx < 0 {
				return "", fmt.Errorf("%s: index must be a non-negative integer", s.SrcRange)
			}
			fmt.Fprintf(&b, "[%d]", idx)
		default:
			return "", fmt.Errorf("%s: unsupported reference step", step.SourceRange())
		}
	}
	return b.String(), nil
}
