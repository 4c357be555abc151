package commands

import (
	"context"
	"crypto/rsa"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"padding_oracle_service/internal/app"
	"padding_oracle_service/internal/domain/attack"
	"padding_oracle_service/internal/infrastructure/cryptography"
	"padding_oracle_service/internal/pkg/config"
	"padding_oracle_service/internal/pkg/logger"
)

const demoMessage = "We did it! We did it!"

// AttackCommandHandler encapsulates logic for running the padding oracle
// attack via CLI.
type AttackCommandHandler struct {
	rsaProcessor attack.RSAProcessor
	logger       logger.Logger
}

// NewAttackCommandHandler initializes a new AttackCommandHandler with logging
// and an RSA processor.
func NewAttackCommandHandler() (*AttackCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &AttackCommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// RecoverPlaintextCmd recovers the plaintext of a PKCS#1 v1.5 ciphertext
// using the padding oracle attack. The private key is only used to stand up
// the local oracle; the attack itself sees the public key and the oracle's
// one-bit answers.
func (commandHandler *AttackCommandHandler) RecoverPlaintextCmd(cmd *cobra.Command, _ []string) {
	ciphertextFile, err := cmd.Flags().GetString("ciphertext-file")
	if err != nil {
		commandHandler.logger.Error("invalid ciphertext-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}
	maxIterations, err := cmd.Flags().GetInt("max-iterations")
	if err != nil {
		commandHandler.logger.Error("invalid max-iterations flag: ", err)
		return
	}

	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encoded, err := os.ReadFile(filepath.Clean(ciphertextFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	raw, err := hex.DecodeString(strings.TrimSpace(string(encoded)))
	if err != nil {
		commandHandler.logger.Error("ciphertext file is not valid hex: ", err)
		return
	}

	settings := config.DefaultAttackSettings()
	settings.MaxIterations = maxIterations

	message, err := commandHandler.runAttack(cmd.Context(), publicKey, privateKey, new(big.Int).SetBytes(raw), settings)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Recovered plaintext: ", string(message))
}

// DemoCmd runs the full scenario: encrypt a known message, then recover it
// through the oracle alone. By default it uses a fixed 96-byte-modulus key
// pair; --key-size generates a fresh pair instead.
func (commandHandler *AttackCommandHandler) DemoCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetUint("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}

	var publicKey *rsa.PublicKey
	var privateKey *rsa.PrivateKey
	if keySize == 0 {
		publicKey, privateKey = cryptography.ReferenceKeyPair()
	} else {
		params := &attack.KeyPairParams{Algorithm: attack.AlgorithmRSA, KeySize: keySize}
		if err := params.Validate(); err != nil {
			commandHandler.logger.Error(err)
			return
		}
		privateKey, publicKey, err = commandHandler.rsaProcessor.GenerateKeys(int(keySize))
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
	}

	commandHandler.logger.Info("Encrypting message: ", demoMessage)
	ciphertext, err := commandHandler.rsaProcessor.EncryptPKCS1v15([]byte(demoMessage), publicKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := commandHandler.runAttack(cmd.Context(), publicKey, privateKey, ciphertext, config.DefaultAttackSettings())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Recovered plaintext: ", string(message))
}

func (commandHandler *AttackCommandHandler) runAttack(
	ctx context.Context,
	publicKey *rsa.PublicKey,
	privateKey *rsa.PrivateKey,
	ciphertext *big.Int,
	settings *config.AttackSettings,
) ([]byte, error) {
	oracle, err := cryptography.NewPaddingOracle(privateKey, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create padding oracle: %w", err)
	}

	recoveryService, err := app.NewPlaintextRecoveryService(publicKey, oracle, settings, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create recovery service: %w", err)
	}

	message, err := recoveryService.Recover(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("attack failed after %d oracle queries: %w", oracle.Queries(), err)
	}

	commandHandler.logger.Info(fmt.Sprintf("Oracle queried %d times", oracle.Queries()))
	return message, nil
}

// InitAttackCommands registers attack-related commands
func InitAttackCommands(rootCmd *cobra.Command) error {
	handler, err := NewAttackCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create attack command handler %w", err)
	}

	var recoverPlaintextCmd = &cobra.Command{
		Use:   "recover-plaintext",
		Short: "Recover a PKCS#1 v1.5 plaintext via the padding oracle attack",
		Run:   handler.RecoverPlaintextCmd,
	}
	recoverPlaintextCmd.Flags().StringP("ciphertext-file", "", "", "Path to the hex ciphertext file")
	recoverPlaintextCmd.Flags().StringP("public-key", "", "", "Path to the RSA public key")
	recoverPlaintextCmd.Flags().StringP("private-key", "", "", "Path to the RSA private key backing the oracle")
	recoverPlaintextCmd.Flags().IntP("max-iterations", "", config.DefaultMaxIterations, "Cap on outer attack iterations")
	rootCmd.AddCommand(recoverPlaintextCmd)

	var demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Run the end-to-end attack against a fixed reference key pair",
		Run:   handler.DemoCmd,
	}
	demoCmd.Flags().UintP("key-size", "", 0, "Generate a fresh RSA key pair of this bit size instead of the reference pair")
	rootCmd.AddCommand(demoCmd)

	return nil
}
