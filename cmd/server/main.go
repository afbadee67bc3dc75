package main

import (
	"log"
	"net/http"

	"navportal/api"
	"navportal/config"
	"navportal/internal/repository"
	"navportal/internal/scheduler"
	"navportal/internal/service"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. 初始化数据库
	db, err := repository.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 3. 初始化服务
	services := service.NewServices(db, cfg)

	// 4. 初始化调度器
	if cfg.RotateEnabled() {
		newScheduler := scheduler.NewScheduler(services.Rotator)
		if err := newScheduler.Start(); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
	} else {
		log.Println("每日密码轮换已关闭")
	}

	// 5. 启动HTTP服务器
	router := api.SetupRouter(services)

	log.Printf("Starting server on %s", cfg.Server.Address)
	if err := http.ListenAndServe(cfg.Server.Address, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
