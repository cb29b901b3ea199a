// Package orderlog appends committed order transitions to a text file, one line each:
//
//	OrderID:<id>,Name:<customer>,Total:<amount with 2 decimals>,Status:<Pending|Delivered>
package orderlog

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// FileSink implements ports.OrderEventSink. The file is opened for every append so that
// external rotation is picked up without a restart.
type FileSink struct {
	mu   sync.Mutex
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Name identifies the sink in logs and metrics.
func (s *FileSink) Name() string {
	return "file"
}

// Append writes one record. Orders without lines, and customer names that would break the
// record into extra fields or lines, are never written.
func (s *FileSink) Append(ctx context.Context, snapshot order.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(snapshot.Lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	if strings.ContainsAny(snapshot.CustomerName, ",\r\n") {
		return errs.NewValueIsInvalidError("customer name contains a comma or line break")
	}

	line := FormatRecord(snapshot) + "\n"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open order log: %w", err)
	}
	if _, err = f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("write order log: %w", err)
	}
	return f.Close()
}

// FormatRecord renders the record for a snapshot without the trailing newline.
func FormatRecord(snapshot order.Snapshot) string {
	return fmt.Sprintf("OrderID:%d,Name:%s,Total:%s,Status:%s",
		snapshot.ID, snapshot.CustomerName, snapshot.Total.String(), snapshot.Status)
}
