package primality

import (
	"io"
	"os"
)

func defaultLogWriter() io.Writer {
	return os.Stderr
}
