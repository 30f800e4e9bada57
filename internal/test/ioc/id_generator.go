package ioc

import (
	"time"

	"github.com/sony/sonyflake"
)

// InitIDGenerator 固定机器号的ID生成器
func InitIDGenerator() *sonyflake.Sonyflake {
	return sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		MachineID: func() (uint16, error) {
			return 1, nil
		},
	})
}
