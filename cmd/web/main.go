// @title           CareerCode API
// @version         1.0
// @description     API доски вакансий: вакансии, отклики, сессии.
// @contact.name    CareerCode
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

package main

import "careercode_backend/internal/app"

func main() {
	app.Run()
}
