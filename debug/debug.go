package debug

import (
	"os"
	"strconv"
)

type debug struct {
	File  bool
	Edit  bool
	Query bool
}

var d *debug

func init() {
	d = fromEnv()
}

func fromEnv() *debug {
	return &debug{
		File:  boolEnv("NBT_DEBUG_FILE"),
		Edit:  boolEnv("NBT_DEBUG_EDIT"),
		Query: boolEnv("NBT_DEBUG_QUERY"),
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func File() bool {
	return d.File
}
func Edit() bool {
	return d.Edit
}
func Query() bool {
	return d.Query
}

