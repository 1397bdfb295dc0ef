package routers

import (
	"github.com/tomazdalcortivo/sdpe_mid/controllers/errorhandler"
	internalcontrollers "github.com/tomazdalcortivo/sdpe_mid/internal/controllers"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/filter/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Tratamento de erros
	beego.ErrorController(&errorhandler.ErrorHandlerController{})
	beego.BConfig.RecoverFunc = errorhandler.HandlePanic

	beego.Router("/v1/projetos", &internalcontrollers.ProjetosController{}, "get:GetListado")
	beego.Router("/v1/projetos/instituicoes", &internalcontrollers.ProjetosController{}, "get:GetInstituicoes")
	beego.Router("/v1/projetos/resumo", &internalcontrollers.ProjetosController{}, "get:GetResumo")
	beego.Router("/v1/projetos/:id/imagem", &internalcontrollers.ProjetosController{}, "get:GetImagem")

	beego.Router("/v1/admin/secoes", &internalcontrollers.AdminController{}, "get:GetSecoes")
	beego.Router("/v1/admin/secoes/:secao", &internalcontrollers.AdminController{}, "get:GetSecao")
	beego.Router("/v1/admin/secoes/:secao/acoes", &internalcontrollers.AdminController{}, "post:PostAcao")

	beego.Router("/v1/perfil", &internalcontrollers.PerfilController{}, "get:GetPerfil")

	// Métricas
	metrics := &prometheus.FilterChainBuilder{}
	beego.InsertFilterChain("/v1/*", metrics.FilterChain)
	beego.Handler("/metrics", promhttp.Handler())
}
