package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"portfolio/config"
	"portfolio/database"
	"portfolio/logger"
	"portfolio/util/random"
	"portfolio/web"
	"portfolio/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close db err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func showAdmin() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	admin, err := userService.GetFirstAdmin()
	if err != nil {
		fmt.Println("get current admin failed:", err)
		return
	}
	fmt.Println("current admin settings as follows:")
	fmt.Println("username:", admin.Username)
	fmt.Println("email:", admin.Email)
	fmt.Println("port:", config.GetPort())
}

func updateAdmin(username string, password string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	if username != "" || password != "" {
		userService := service.UserService{}
		err := userService.UpdateFirstAdmin(username, password)
		if err != nil {
			fmt.Println("set username and password failed:", err)
		} else {
			fmt.Println("set username and password success")
		}
	}
}

func generateSecret() {
	fmt.Println("PORTFOLIO_JWT_SECRET=" + random.Seq(48))
}

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: "portfolio",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Manage settings",
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current admin settings",
		Run: func(cmd *cobra.Command, args []string) {
			showAdmin()
		},
	}

	var updateCmd = &cobra.Command{
		Use:   "update",
		Short: "Update admin credentials",
		Run: func(cmd *cobra.Command, args []string) {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			updateAdmin(username, password)
		},
	}

	updateCmd.Flags().String("username", "", "set login username")
	updateCmd.Flags().String("password", "", "set login password")

	var secretCmd = &cobra.Command{
		Use:   "secret",
		Short: "Generate a token signing secret",
		Run: func(cmd *cobra.Command, args []string) {
			generateSecret()
		},
	}

	settingCmd.AddCommand(showCmd, updateCmd, secretCmd)

	rootCmd.AddCommand(runCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
