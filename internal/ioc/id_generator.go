package ioc

import (
	"fmt"
	"time"

	"gitee.com/flycash/notification-scheduler/internal/errs"
	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

type IDGeneratorConfig struct {
	MachineID uint16 `yaml:"machineID"`
	// 格式 2006-01-02
	StartTime string `yaml:"startTime"`
}

func InitIDGenerator() *sonyflake.Sonyflake {
	cfg := IDGeneratorConfig{
		MachineID: 1,
		StartTime: "2025-01-01",
	}
	err := econf.UnmarshalKey("idgen", &cfg)
	if err != nil {
		panic(err)
	}
	return newIDGenerator(cfg)
}

func newIDGenerator(cfg IDGeneratorConfig) *sonyflake.Sonyflake {
	startTime, err := time.Parse(time.DateOnly, cfg.StartTime)
	if err != nil {
		panic(fmt.Errorf("%w: %w", errs.ErrIDGeneratorInit, err))
	}
	// 单实例部署，机器号直接从配置里取
	g := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: startTime,
		MachineID: func() (uint16, error) {
			return cfg.MachineID, nil
		},
	})
	if g == nil {
		panic(fmt.Errorf("%w: machineID = %d, startTime = %s", errs.ErrIDGeneratorInit, cfg.MachineID, cfg.StartTime))
	}
	return g
}
