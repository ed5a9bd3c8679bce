package ztasktest

import (
	"github.com/spf13/afero"
	"ztask/system/file"
)

func ResetAppFs() {
	// Reset the AppFs to the original filesystem
	file.AppFs = afero.NewOsFs()
}
