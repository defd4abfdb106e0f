package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	ctx      context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo,
		services.WithSearchLimit(5),
		services.WithAccountClock(fixedClock),
	)
	suite.ctx = context.Background()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{Number: " 601 ", Label: " Achats ", Kind: domain.KindPtr(domain.Expense)}

	suite.mockRepo.On("FindAccountByNumber", suite.ctx, "601").Return(nil, apperrors.AccountNotFound("601")).Once()
	suite.mockRepo.On("LabelTaken", suite.ctx, "Achats", "").Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Number == "601" && a.Label == "Achats" && a.Active && a.HasKind(domain.Expense)
	})).Return(nil).Once()

	acc, err := suite.service.CreateAccount(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("601", acc.Number)
	suite.Equal(fixedClock(), acc.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidNumber() {
	for _, number := range []string{"", "60A", "12345678901"} {
		_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{Number: number, Label: "x"})
		suite.Equal(apperrors.CodeInvalidNumber, apperrors.CodeOf(err), "number %q", number)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateNumber() {
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, "601").Return(&domain.Account{Number: "601"}, nil).Once()

	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{Number: "601", Label: "Achats"})

	suite.Equal(apperrors.CodeDuplicateNumber, apperrors.CodeOf(err))
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateLabel() {
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, "602").Return(nil, apperrors.AccountNotFound("602")).Once()
	suite.mockRepo.On("LabelTaken", suite.ctx, "ACHATS", "").Return(true, nil).Once()

	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{Number: "602", Label: "ACHATS"})

	suite.Equal(apperrors.CodeDuplicateLabel, apperrors.CodeOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_StoreFailure() {
	boom := apperrors.Store("find account", errors.New("disk"))
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, "601").Return(nil, boom).Once()

	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{Number: "601", Label: "Achats"})

	suite.ErrorIs(err, apperrors.ErrFatalStore)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_InUse() {
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, "601").Return(&domain.Account{Number: "601"}, nil).Once()
	suite.mockRepo.On("CountEntryReferences", suite.ctx, "601").Return(3, nil).Once()

	err := suite.service.DeleteAccount(suite.ctx, "601")

	appErr, ok := apperrors.As(err)
	suite.Require().True(ok)
	suite.Equal(apperrors.CodeAccountInUse, appErr.Code)
	suite.Equal(3, appErr.Count)
	suite.ErrorIs(err, apperrors.ErrIntegrityBlock)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Unreferenced() {
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, "999").Return(&domain.Account{Number: "999"}, nil).Once()
	suite.mockRepo.On("CountEntryReferences", suite.ctx, "999").Return(0, nil).Once()
	suite.mockRepo.On("DeleteAccount", suite.ctx, "999").Return(nil).Once()

	suite.NoError(suite.service.DeleteAccount(suite.ctx, "999"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSearchAccounts_UsesConfiguredLimit() {
	found := []domain.Account{{Number: "601"}}
	suite.mockRepo.On("SearchAccounts", suite.ctx, "60", 5).Return(found, nil).Once()
	suite.mockRepo.On("SearchAccounts", suite.ctx, "60", 2).Return(found, nil).Once()

	got, err := suite.service.SearchAccounts(suite.ctx, " 60 ", 0)
	suite.Require().NoError(err)
	suite.Equal(found, got)

	_, err = suite.service.SearchAccounts(suite.ctx, "60", 2)
	suite.Require().NoError(err)

	empty, err := suite.service.SearchAccounts(suite.ctx, "   ", 0)
	suite.Require().NoError(err)
	suite.Empty(empty)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount() {
	existing := &domain.Account{Number: "601", Label: "Achats", Active: true}
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, "601").Return(existing, nil).Once()
	suite.mockRepo.On("LabelTaken", suite.ctx, "Achats stockés", "601").Return(false, nil).Once()
	suite.mockRepo.On("UpdateAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Label == "Achats stockés" && a.HasKind(domain.Expense)
	})).Return(nil).Once()

	label := "Achats stockés"
	acc, err := suite.service.UpdateAccount(suite.ctx, "601", dto.UpdateAccountRequest{Label: &label, Kind: domain.KindPtr(domain.Expense)})

	suite.Require().NoError(err)
	suite.Equal(label, acc.Label)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoChanges() {
	existing := &domain.Account{Number: "601", Label: "Achats", Active: true}
	suite.mockRepo.On("FindAccountByNumber", suite.ctx, "601").Return(existing, nil).Once()

	label := "Achats"
	_, err := suite.service.UpdateAccount(suite.ctx, "601", dto.UpdateAccountRequest{Label: &label})

	suite.NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
