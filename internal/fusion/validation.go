package fusion

import (
	"github.com/imadgeboyega/destiny-fusion/internal/common/utils"
	"github.com/imadgeboyega/destiny-fusion/internal/saju"
)

func init() {
	// Hangul spellings are canonicalized while decoding, so only Hanja reaches here
	stem := func(s string) bool { return saju.Stem(s).Index() >= 0 }
	branch := func(s string) bool { return saju.Branch(s).Index() >= 0 }
	if err := utils.RegisterStringValidation("stem", stem); err != nil {
		panic(err)
	}
	if err := utils.RegisterStringValidation("branch", branch); err != nil {
		panic(err)
	}
}

// Validate checks a request DTO against its struct tags
func Validate(req interface{}) error {
	return utils.ValidateStruct(req)
}
