package tools

import (
	"RouletteLedger/pkg/errors"
	"RouletteLedger/pkg/logger"
	"fmt"
)

// Recover is method to use with defer statement.
// The panic is logged and, when errp is not nil, stored into it as an error.
func Recover(lg logger.Logger, errp *error) {
	r := recover()
	if r == nil {
		return
	}

	var err error
	switch t := r.(type) {
	case error:
		err = errors.WrapStack(t, "recover panic")
	default:
		err = errors.WrapStack(fmt.Errorf("%v", t), "recover panic")
	}

	if lg != nil {
		lg.Error("Recover panic", err)
	} else {
		fmt.Printf("Recover panic: %v stack: %v", r, errors.GetStack(err))
	}

	if errp != nil {
		*errp = err
	}
}
