package scheduler

import (
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"navportal/internal/service"
)

// rotateSchedule 每日凌晨轮换密码，秒级cron表达式
const rotateSchedule = "0 0 0 * * *"

// Scheduler 定时任务调度器
type Scheduler struct {
	cron      *cron.Cron
	jobMutex  sync.Mutex
	isRunning bool
	rotator   service.RotatorService
}

// NewScheduler 创建调度器
func NewScheduler(rotator service.RotatorService) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		isRunning: false,
		rotator:   rotator,
	}
}

// Start 注册每日密码轮换任务并启动调度器
func (s *Scheduler) Start() error {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	if s.isRunning {
		return nil
	}

	_, err := s.cron.AddFunc(rotateSchedule, func() {
		if err := s.rotator.Rotate(); err != nil {
			log.Printf("每日密码更新失败: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Added daily password job with schedule %s", rotateSchedule)

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler stopped")
	}
}
