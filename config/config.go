// config/config.go
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App - 서비스 전체 설정. main에서 한 번 로드해 핸들러에 주입한다.
// 에어테이블 자격 증명이 비어 있어도 기동은 가능하다. 데모/관리자
// 계정은 스토어 없이 동작한다.
type App struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	AirtableAPIKey string `envconfig:"AIRTABLE_API_KEY"`
	AirtableBaseID string `envconfig:"AIRTABLE_BASE_ID"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	DemoEmail     string `envconfig:"DEMO_EMAIL" default:"demo@test.com"`
	DemoPassword  string `envconfig:"DEMO_PASSWORD" default:"demo1234"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"관리자"`
}

// Load는 환경 변수에서 설정을 읽는다.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
