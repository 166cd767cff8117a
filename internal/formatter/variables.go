package formatter

import (
	"fmt"
	"strings"

	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/format"
)

// VariableContext contains the data a listing template is rendered from.
type VariableContext struct {
	Listing domain.Listing
	// Images turns a relative image path into a URL. Optional.
	Images func(string) string
}

// VariableResolver resolves template variables to their values.
type VariableResolver interface {
	Resolve(varName string, ctx VariableContext) (string, error)
}

type variableResolver struct{}

// NewVariableResolver creates a new variable resolver instance.
func NewVariableResolver() VariableResolver {
	return &variableResolver{}
}

// Variables lists the names Resolve accepts.
var Variables = []string{
	"id", "book-name", "subject", "category", "branch", "regulation", "year",
	"condition", "price", "amount", "seller", "description", "image", "has-image", "created-at",
}

// Resolve returns the string value for a variable from the context.
func (vr *variableResolver) Resolve(varName string, ctx VariableContext) (string, error) {
	l := ctx.Listing
	switch varName {
	case "id":
		return l.ID.String(), nil
	case "book-name":
		return l.Title, nil
	case "subject":
		return l.Subject, nil
	case "category":
		return l.Category, nil
	case "branch":
		return l.Branch(), nil
	case "regulation":
		return l.Regulation, nil
	case "year":
		if !l.BookYear.IsZero() {
			return l.BookYear.String(), nil
		}
		return l.Year.String(), nil
	case "condition":
		return l.Condition, nil
	case "price":
		return format.Price(l.Price), nil
	case "amount":
		return l.Price.String(), nil
	case "seller":
		return l.SellerRollNo, nil
	case "description":
		return l.Description, nil
	case "image":
		if !l.HasImage() {
			return format.NoImage, nil
		}
		if ctx.Images == nil {
			return l.ImageURL, nil
		}
		return ctx.Images(l.ImageURL), nil
	case "has-image":
		return boolToString(l.HasImage()), nil
	case "created-at":
		return l.CreatedAt, nil
	default:
		return "", fmt.Errorf("unknown variable: %s (available: %s)", varName, strings.Join(Variables, ", "))
	}
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
