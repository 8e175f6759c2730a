package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"planora-api/internal/model"
	"planora-api/internal/user"
	pkgErrors "planora-api/pkg/errors"
	"planora-api/pkg/minio"
	pkgPostgres "planora-api/pkg/postgre"
)

const maxAvatarSize = 5 << 20 // 5 MiB

var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

func (uc implUsecase) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	if !sc.IsAdmin() && sc.UserID != id {
		return model.User{}, pkgErrors.NewForbiddenHTTPError()
	}

	if err := pkgPostgres.IsUUID(id); err != nil {
		return model.User{}, user.ErrUserNotFound
	}

	u, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return model.User{}, err
	}

	return u, nil
}

func (uc implUsecase) List(ctx context.Context, sc model.Scope, input user.ListInput) (user.ListOutput, error) {
	if !sc.IsAdmin() {
		return user.ListOutput{}, pkgErrors.NewForbiddenHTTPError()
	}

	result, err := uc.repo.List(ctx, user.ListUserOption{
		PaginateQuery: input.PaginateQuery,
		Role:          input.Role,
		Email:         input.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.List: %v", err)
		return user.ListOutput{}, err
	}

	return user.ListOutput{
		Users:     result.Users,
		Paginator: result.Paginator,
	}, nil
}

func (uc implUsecase) UpdateProfile(ctx context.Context, sc model.Scope, input user.UpdateProfileInput) (model.User, error) {
	if input.FullName == nil {
		return model.User{}, user.ErrNothingToUpdate
	}

	u, err := uc.repo.Update(ctx, user.UpdateUserOption{
		ID:       sc.UserID,
		FullName: input.FullName,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UpdateProfile: %v", err)
		return model.User{}, err
	}

	return u, nil
}

func (uc implUsecase) UploadAvatar(ctx context.Context, sc model.Scope, input user.UploadAvatarInput) (user.UploadAvatarOutput, error) {
	if input.Size <= 0 || input.Size > maxAvatarSize {
		return user.UploadAvatarOutput{}, user.ErrAvatarTooLarge
	}
	if !allowedAvatarTypes[strings.ToLower(input.ContentType)] {
		return user.UploadAvatarOutput{}, user.ErrUnsupportedAvatar
	}

	objectName := fmt.Sprintf("%s/avatar%s", sc.UserID, filepath.Ext(input.FileName))

	info, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.avatarBucket,
		ObjectName:   objectName,
		OriginalName: input.FileName,
		Reader:       input.Reader,
		Size:         input.Size,
		ContentType:  input.ContentType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.UploadAvatar: upload: %v", err)
		return user.UploadAvatarOutput{}, err
	}

	u, err := uc.repo.Update(ctx, user.UpdateUserOption{
		ID:        sc.UserID,
		AvatarURL: &info.ObjectName,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.UploadAvatarOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UploadAvatar: link avatar: %v", err)
		return user.UploadAvatarOutput{}, err
	}

	url, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.avatarBucket,
		ObjectName: info.ObjectName,
		Expiry:     minio.DefaultPresignExpiry,
	})
	if err != nil {
		// The avatar is stored and linked, a missing preview link is not fatal.
		uc.l.Warnf(ctx, "internal.user.usecase.UploadAvatar: presign: %v", err)
	}

	return user.UploadAvatarOutput{
		User: u,
		URL:  url,
	}, nil
}
