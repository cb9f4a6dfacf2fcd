package review

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const scopeName = "github.com/ytget/names72/internal/review"

var logger = otelslog.NewLogger(scopeName)
