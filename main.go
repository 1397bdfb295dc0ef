package main

import (
	"github.com/tomazdalcortivo/sdpe_mid/internal/middlewares"
	_ "github.com/tomazdalcortivo/sdpe_mid/routers"
	"github.com/tomazdalcortivo/sdpe_mid/services"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	cors "github.com/beego/beego/v2/server/web/filter/cors"
)

func main() {
	cfg, err := services.LoadConfig()
	if err != nil {
		logs.Critical("configuração inválida: %v", err)
		return
	}

	logs.SetLogFuncCall(true)
	if cfg.RunMode != "dev" {
		_ = logs.SetLogger(logs.AdapterConsole, `{"level":6}`)
	}

	beego.BConfig.AppName = cfg.AppName
	beego.BConfig.RunMode = cfg.RunMode
	beego.BConfig.Listen.HTTPPort = cfg.HTTPPort
	beego.BConfig.CopyRequestBody = true
	beego.BConfig.RecoverPanic = true

	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(&cors.Options{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Requested-With", "X-Request-Id", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id", "X-Cover-State"},
		AllowCredentials: true,
	}))
	middlewares.UseAuth(cfg.AdminRole)

	if beego.BConfig.RunMode == "dev" {
		beego.BConfig.WebConfig.DirectoryIndex = true
		beego.BConfig.WebConfig.StaticDir["/swagger"] = "swagger"
	}
	beego.Run()
}
