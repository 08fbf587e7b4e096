package config_test

import (
	"os"
	"path/filepath"
	"time"

	"storefront/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	var (
		app     config.App
		err     error
		envFile string
	)

	setRequired := func() {
		GinkgoT().Setenv("API_PORT", "8080")
		GinkgoT().Setenv("ETH_NODE_URL", "http://localhost:8545")
		GinkgoT().Setenv("DB_CONNECTION_URL", "postgres://localhost/storefront")
		GinkgoT().Setenv("JWT_SECRET", "secret")
		GinkgoT().Setenv("MARKETPLACE_CONTRACT_ADDRESS", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	}

	BeforeEach(func() {
		envFile = filepath.Join(GinkgoT().TempDir(), "missing.env")
	})

	JustBeforeEach(func() {
		app, err = config.NewApp(envFile)
	})

	When("all required variables are set", func() {
		BeforeEach(setRequired)

		It("should apply defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.ChainID).To(Equal(int64(84532)))
			Expect(app.NetworkName).To(Equal("Base Sepolia"))
			Expect(app.AllowOrigins).To(Equal([]string{"*"}))
			Expect(app.SecureCookie).To(BeFalse())
			Expect(app.ReceiptPollInterval).To(Equal(5 * time.Second))
			Expect(app.SessionTTL).To(Equal(24 * time.Hour))
			Expect(app.ChallengeTTL).To(Equal(5 * time.Minute))
		})
	})

	When("a variable comes from the env file", func() {
		BeforeEach(func() {
			setRequired()
			os.Unsetenv("JWT_SECRET")
			envFile = filepath.Join(GinkgoT().TempDir(), ".env")
			Expect(os.WriteFile(envFile, []byte("JWT_SECRET=from-file\n"), 0o600)).To(Succeed())
			DeferCleanup(os.Unsetenv, "JWT_SECRET")
		})

		It("should load it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.JWTSecret).To(Equal("from-file"))
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			setRequired()
			os.Unsetenv("ETH_NODE_URL")
		})

		It("should return an error naming it", func() {
			Expect(err).To(MatchError(ContainSubstring("ETH_NODE_URL")))
		})
	})

	When("the contract address is malformed", func() {
		BeforeEach(func() {
			setRequired()
			GinkgoT().Setenv("MARKETPLACE_CONTRACT_ADDRESS", "0x123")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("invalid marketplace contract address")))
		})
	})
})
