package mdupgrade

import "github.com/alnah/go-mdupgrade/internal/verify"

// ErrFenceMismatch indicates the rewritten document has a different number
// of fenced code blocks than the input. Returned only with WithVerify.
var ErrFenceMismatch = verify.ErrFenceMismatch
