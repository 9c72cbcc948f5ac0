// Command devtoken emite un JWT firmado con JWT_SECRET para probar la API en local.
//
//	go run ./cmd/devtoken -merchant 1 -role manager
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/stock-api/pkg/config"
	"github.com/jhoicas/stock-api/pkg/jwt"
)

func main() {
	merchantID := flag.Int64("merchant", 0, "id del comercio (obligatorio)")
	role := flag.String("role", "admin", "rol: admin, manager o cashier")
	userID := flag.String("user", "dev", "id del usuario")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if *merchantID <= 0 {
		fmt.Fprintln(os.Stderr, "-merchant es obligatorio")
		os.Exit(2)
	}
	token, err := jwt.Generate(cfg.JWT.Secret, *userID, *merchantID, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
