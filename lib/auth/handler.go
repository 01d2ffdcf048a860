package auth

import (
	"admission-backend/config"
	"admission-backend/db"
	staffstore "admission-backend/lib/auth/store"
	authutils "admission-backend/lib/utils/auth-utils"
	"admission-backend/models"
	authapimodels "admission-backend/models/api/auth"
	dbmodels "admission-backend/models/db"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Refresh(refreshToken string) (response authapimodels.JWTResponse, err error)
	CreateUser(data authapimodels.UserCreateRequest) (id string, err error)
	ListUsers(role models.UserRole) ([]authapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: staffstore.NewInstance(db.DB),
	}
}

type impl struct {
	store staffstore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, errors.New("пользователь с такой почтой не найден")
	}
	if !user.IsActive {
		return authapimodels.JWTResponse{}, errors.New("учётная запись отключена")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, errors.New("пользователь не прошел проверку пароля")
	}
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		logger.WithError(err).Error("ошибка генерации refresh JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления даты последнего входа")
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (i impl) Refresh(refreshToken string) (response authapimodels.JWTResponse, err error) {
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return authapimodels.JWTResponse{}, errors.New("недействительный refresh токен")
	}
	userID, _ := claims["sub"].(string)
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, errors.New("пользователь не найден")
	}
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	newRefresh, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: newRefresh,
	}, nil
}

func (i impl) CreateUser(data authapimodels.UserCreateRequest) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	existing, err := i.store.FindByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errors.New("пользователь с такой почтой уже есть")
	}
	rec := dbmodels.StaffUser{
		Email:     data.Email,
		Password:  authutils.GetMD5Hash(data.Password),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Role:      data.Role,
		IsActive:  true,
	}
	return i.store.Create(rec)
}

func (i impl) ListUsers(role models.UserRole) ([]authapimodels.UserView, error) {
	list, err := i.store.ListByRole(role)
	if err != nil {
		return nil, err
	}
	result := make([]authapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, authapimodels.UserConvert(rec))
	}
	return result, nil
}
