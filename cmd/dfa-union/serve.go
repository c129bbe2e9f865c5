package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/dylo101/DFA-Union/internal/adapters/http"
	"github.com/dylo101/DFA-Union/internal/adapters/redis"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Starts the union builder in stateless server mode, exposing a JSON API over
HTTP. With --redis-addr set, valid results are cached in Redis.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis-addr")
		redisTTL, _ := cmd.Flags().GetDuration("redis-ttl")

		opts := []httpAdapter.Option{httpAdapter.WithLogger(newLogger(cmd))}

		if redisAddr != "" {
			cache := redis.New(redisAddr, "", 0, redis.WithTTL(redisTTL))
			defer cache.Close()
			opts = append(opts, httpAdapter.WithCache(cache))
		}

		handler := httpAdapter.NewHandler(opts...)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting DFA Union Server on %s\n", srv.Addr)
			if redisAddr != "" {
				fmt.Printf("Caching results in Redis at %s\n", redisAddr)
			}
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("DFA Union Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis-addr", "", "Redis address for result caching (empty disables caching)")
	serveCmd.Flags().Duration("redis-ttl", 24*time.Hour, "Lifetime of cached results")
}
