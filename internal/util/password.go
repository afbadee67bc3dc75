package util

import (
	"crypto/rand"
	"math/big"
)

// passwordChars 每日密码字符集，去掉了容易看错的 0/O/1/I/l/o/i
const passwordChars = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

// GeneratePassword 生成指定长度的随机密码
func GeneratePassword(length int) (string, error) {
	max := big.NewInt(int64(len(passwordChars)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		password[i] = passwordChars[n.Int64()]
	}
	return string(password), nil
}
