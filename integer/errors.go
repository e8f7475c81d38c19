package integer

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package. Values outside of a
// schema's range are reported with bigint.RangeError instead.
var Error = errs.Class("integer")
