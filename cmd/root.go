package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"emailgenie/internal/logger"
	"emailgenie/internal/repository"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "emailgenie",
	Short: "EmailGenie",
	Long:  "Generates personalized outreach emails from saved sender profiles and sends them",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the EmailGenie api",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New()
		defer log.Sync()

		deps, err := InitializeDependencies(cmd.Context(), ConfigFromViper(), log)
		if err != nil {
			return err
		}
		defer CloseDependencies(deps, log)

		return deps.ApiHandler.StartApi(viper.GetInt("port"))
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the email_templates and sent_emails tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New()
		defer log.Sync()

		cfg := ConfigFromViper()
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("database.url not configured")
		}
		dbConn, err := OpenDb(cmd.Context(), cfg.DatabaseURL, log)
		if err != nil {
			return err
		}
		return dbConn.Close()
	},
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage saved sender profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := repository.NewProfileRepository(viper.GetString("profiles.path")).List()
		if err != nil {
			return err
		}
		for _, p := range profiles {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s <%s>\n", p.Name, p.Industry, p.SenderName, p.SenderEmail)
		}
		return nil
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a saved profile by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return repository.NewProfileRepository(viper.GetString("profiles.path")).Delete(args[0])
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Int("port", 3009, "Port for the api")
	rootCmd.PersistentFlags().String("database.url", "", "Postgres connection URL for templates and the sent email log")
	rootCmd.PersistentFlags().String("profiles.path", "data/user_profiles.csv", "Path to the profiles CSV file")
	rootCmd.PersistentFlags().Bool("crm.enabled", false, "Record sent emails as HubSpot contacts")

	for _, name := range []string{"port", "database.url", "profiles.path", "crm.enabled"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	profilesCmd.AddCommand(profilesListCmd, profilesDeleteCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, profilesCmd)
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("EMAILGENIE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
