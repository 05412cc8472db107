package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"ghsweep/pkg/domain/model"
)

func TestStatusError(t *testing.T) {
	err := &model.StatusError{StatusCode: 404, Message: "Not Found"}
	gt.S(t, err.Error()).Contains("404")
	gt.S(t, err.Error()).Contains("Not Found")
}
