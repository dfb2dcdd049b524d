package handlers

import (
	"fmt"
	"sync"

	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the ledger tags to gin's binding validator:
// "txntype" accepts a known transaction type and "ledgerside" accepts Debit or Credit.
func RegisterValidators() error {
	var err error
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		if err = v.RegisterValidation("txntype", func(fl validator.FieldLevel) bool {
			return domain.TransactionType(fl.Field().String()).Valid()
		}); err != nil {
			return
		}
		err = v.RegisterValidation("ledgerside", func(fl validator.FieldLevel) bool {
			return domain.Side(fl.Field().String()).Valid()
		})
	})
	return err
}
