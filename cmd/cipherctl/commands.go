package main

import (
	"fmt"
	"io"
	"strings"

	"cipher-backend/crypto"
	"cipher-backend/crypto/classical"
	"cipher-backend/crypto/deskey"
	"cipher-backend/crypto/matrix"
	"cipher-backend/crypto/polyalphabetic"
	"cipher-backend/crypto/rc4"

	"github.com/spf13/cobra"
)

type keywordPair struct {
	encrypt func(text, key string) (string, error)
	decrypt func(text, key string) (string, error)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cipherctl",
		Short: "Classical and historical cipher toolkit",
		Long: `cipherctl runs the additive, multiplicative, Vigenère, autokey, Playfair
and ADFGVX ciphers, generates RC4 keystreams and derives DES round subkeys.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newNumericCommand("additive", "Additive (Caesar) shift cipher", 0, 25,
			func(text string, key int) (string, error) { return classical.AdditiveEncrypt(text, key), nil },
			func(text string, key int) (string, error) { return classical.AdditiveDecrypt(text, key), nil },
			classical.AdditiveBruteforce),
		newNumericCommand("multiplicative", "Multiplicative cipher; the key must be coprime with 26", 1, 25,
			func(text string, key int) (string, error) { return classical.MultiplicativeEncrypt(text, key), nil },
			classical.MultiplicativeDecrypt,
			classical.MultiplicativeBruteforce),
		newKeywordCommand("vigenere", "Vigenère cipher",
			keywordPair{polyalphabetic.VigenereEncrypt, polyalphabetic.VigenereDecrypt}),
		newKeywordCommand("autokey", "Autokey cipher",
			keywordPair{polyalphabetic.AutokeyEncrypt, polyalphabetic.AutokeyDecrypt}),
		newKeywordCommand("playfair", "Playfair digraph cipher (5x5, I=J)",
			keywordPair{matrix.PlayfairEncrypt, matrix.PlayfairDecrypt}),
		newKeywordCommand("adfgvx", "ADFGVX substitution over a keyed 6x6 square",
			keywordPair{matrix.ADFGVXEncrypt, matrix.ADFGVXDecrypt}),
		newRC4Command(),
		newDESCommand(),
	)

	return root
}

func newNumericCommand(
	name, short string,
	minKey, maxKey int,
	encrypt, decrypt func(text string, key int) (string, error),
	bruteforce func(string) []classical.Candidate,
) *cobra.Command {
	var (
		text      string
		key       int
		isDecrypt bool
		isBrute   bool
	)

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Example: fmt.Sprintf(`  cipherctl %[1]s -t "Hello" -k 3
  cipherctl %[1]s -t "Khoor" -k 3 -d
  cipherctl %[1]s -t "Khoor" -b`, name),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if isBrute {
				for _, c := range bruteforce(text) {
					fmt.Fprintf(out, "%2d %s\n", c.Key, c.Plaintext)
				}
				return nil
			}

			if !cmd.Flags().Changed("key") {
				return fmt.Errorf("required flag \"key\" not set")
			}
			if key < minKey || key > maxKey {
				return fmt.Errorf("%w: %s key must be between %d and %d, got %d", crypto.ErrInvalidKey, name, minKey, maxKey, key)
			}

			op := encrypt
			if isDecrypt {
				op = decrypt
			}
			result, err := op(text, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "text to encrypt or decrypt")
	cmd.Flags().IntVarP(&key, "key", "k", 0, fmt.Sprintf("numeric key in %d..%d", minKey, maxKey))
	cmd.Flags().BoolVarP(&isDecrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	cmd.Flags().BoolVarP(&isBrute, "bruteforce", "b", false, "try every key and print all candidates")
	cmd.MarkFlagsMutuallyExclusive("decrypt", "bruteforce")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newKeywordCommand(name, short string, ops keywordPair) *cobra.Command {
	var (
		text      string
		key       string
		isDecrypt bool
	)

	cmd := &cobra.Command{
		Use:     name,
		Short:   short,
		Example: fmt.Sprintf(`  cipherctl %s -t "attack at dawn" -k LEMON`, name),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := ops.encrypt
			if isDecrypt {
				op = ops.decrypt
			}
			result, err := op(text, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "text to encrypt or decrypt")
	cmd.Flags().StringVarP(&key, "key", "k", "", "keyword")
	cmd.Flags().BoolVarP(&isDecrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newRC4Command() *cobra.Command {
	var (
		key    string
		length int
	)

	cmd := &cobra.Command{
		Use:     "rc4",
		Short:   "Generate an RC4 keystream and its bit statistics",
		Example: `  cipherctl rc4 -k SECURITY -n 16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := rc4.Keystream(rc4.KeyFromString(key), length)
			if err != nil {
				return err
			}
			writeRC4Report(cmd.OutOrStdout(), ks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "key text")
	cmd.Flags().IntVarP(&length, "length", "n", 16, "number of keystream bytes")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func writeRC4Report(w io.Writer, keystream []byte) {
	stats := rc4.Analyze(keystream)

	values := make([]string, len(keystream))
	for i, b := range keystream {
		values[i] = fmt.Sprint(b)
	}

	fmt.Fprintf(w, "keystream:    [%s]\n", strings.Join(values, " "))
	fmt.Fprintf(w, "binary:       %s\n", stats.Bits)
	fmt.Fprintf(w, "derivative:   %s\n", stats.Derivative)
	fmt.Fprintf(w, "change points: %d\n", stats.ChangePoints)
	fmt.Fprintf(w, "ones:         %d/%d\n", stats.Ones, len(stats.Bits))
}

func newDESCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:     "des",
		Short:   "Derive the 16 DES round subkeys",
		Example: `  cipherctl des -k 133457799BBCDFF1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			subkeys, err := deskey.GenerateSubkeys(key)
			if err != nil {
				return err
			}
			for i, k := range subkeys {
				fmt.Fprintf(cmd.OutOrStdout(), "Round %02d: %s\n", i+1, k)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "64-bit key as 16 hexadecimal digits")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
