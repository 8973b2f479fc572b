package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	userID  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobudget-cli",
		Short: "GoBudget CLI tool",
		Long:  `A command line interface for interacting with the GoBudget API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoBudget API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "User ID sent as X-User-ID")

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	accountListCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			includeDeleted, _ := cmd.Flags().GetBool("include-deleted")
			path := "/api/v1/accounts"
			if includeDeleted {
				path += "?include_deleted=true"
			}
			doRequest(http.MethodGet, path, nil)
		},
	}
	accountListCmd.Flags().Bool("include-deleted", false, "Include deleted accounts")

	accountCreateCmd := &cobra.Command{
		Use:   "create <name> <currency>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/accounts", map[string]any{
				"name":     args[0],
				"currency": args[1],
			})
		},
	}

	accountGetCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/accounts/"+args[0], nil)
		},
	}

	accountRenameCmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename an account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPatch, "/api/v1/accounts/"+args[0], map[string]any{
				"name": args[1],
			})
		},
	}

	accountDeleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodDelete, "/api/v1/accounts/"+args[0], nil)
		},
	}

	depositCmd := &cobra.Command{
		Use:   "deposit <id> <amount> <currency>",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/accounts/"+args[0]+"/deposits", map[string]any{
				"amount": map[string]string{"amount": args[1], "currency": args[2]},
			})
		},
	}

	withdrawCmd := &cobra.Command{
		Use:   "withdraw <id> <amount> <currency>",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/accounts/"+args[0]+"/withdrawals", map[string]any{
				"amount": map[string]string{"amount": args[1], "currency": args[2]},
			})
		},
	}

	accountCmd.AddCommand(accountListCmd, accountCreateCmd, accountGetCmd, accountRenameCmd, accountDeleteCmd, depositCmd, withdrawCmd)
	rootCmd.AddCommand(accountCmd)

	// Transfer commands
	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer operations",
	}

	transferCreateCmd := &cobra.Command{
		Use:   "create <source-id> <target-id> <amount>",
		Short: "Create a transfer",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{
				"source_account_id": args[0],
				"target_account_id": args[1],
				"source_amount":     args[2],
			}
			if targetAmount, _ := cmd.Flags().GetString("target-amount"); targetAmount != "" {
				body["target_amount"] = targetAmount
			}
			if description, _ := cmd.Flags().GetString("description"); description != "" {
				body["description"] = description
			}
			doRequest(http.MethodPost, "/api/v1/transfers", body)
		},
	}
	transferCreateCmd.Flags().String("target-amount", "", "Amount credited to the target account (defaults to the source amount)")
	transferCreateCmd.Flags().String("description", "", "Transfer description")

	transferListCmd := &cobra.Command{
		Use:   "list",
		Short: "List transfers",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/transfers", nil)
		},
	}

	transferGetCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a transfer",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/transfers/"+args[0], nil)
		},
	}

	transferCmd.AddCommand(transferCreateCmd, transferListCmd, transferGetCmd)
	rootCmd.AddCommand(transferCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func doRequest(method, path string, body any) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, respBody, "", "  "); err != nil {
		fmt.Println(string(respBody))
		return
	}
	fmt.Println(pretty.String())
}
