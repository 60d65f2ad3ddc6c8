package server

import (
	"context"
	"log/slog"

	trackerv1 "github.com/adeolu-ojo/applytrack/gen/proto/tracker/v1"
	"github.com/adeolu-ojo/applytrack/internal/common"
	"github.com/adeolu-ojo/applytrack/internal/contacts"
	"github.com/adeolu-ojo/applytrack/internal/utils"
)

type ContactsService struct {
	trackerv1.UnimplementedContactsServiceServer
	contactService *contacts.Service
	logger         *slog.Logger
}

func NewContactsService(contactService *contacts.Service, logger *slog.Logger) *ContactsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactsService{
		contactService: contactService,
		logger:         logger,
	}
}

func (s *ContactsService) CreateContact(ctx context.Context, req *trackerv1.CreateContactRequest) (*trackerv1.CreateContactResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	contact, err := s.contactService.CreateContact(ctx, contacts.CreateContactRequest{
		UserID:  userID,
		Name:    req.GetName(),
		Company: req.GetCompany(),
		Email:   req.GetEmail(),
		Role:    req.GetRole(),
		Notes:   req.GetNotes(),
	})
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	return &trackerv1.CreateContactResponse{Contact: utils.ToPBContact(contact)}, nil
}

func (s *ContactsService) ListContacts(ctx context.Context, req *trackerv1.ListContactsRequest) (*trackerv1.ListContactsResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	listed, err := s.contactService.ListContacts(ctx, userID)
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	out := make([]*trackerv1.Contact, 0, len(listed))
	for _, c := range listed {
		out = append(out, utils.ToPBContact(c))
	}
	return &trackerv1.ListContactsResponse{Contacts: out}, nil
}

func (s *ContactsService) UpdateContact(ctx context.Context, req *trackerv1.UpdateContactRequest) (*trackerv1.UpdateContactResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	contactID, err := common.ParseUUID("contact_id", req.GetContactId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	contact, err := s.contactService.UpdateContact(ctx, userID, contactID, contacts.UpdateContactRequest{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Role:    req.Role,
		Notes:   req.Notes,
	})
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	return &trackerv1.UpdateContactResponse{Contact: utils.ToPBContact(contact)}, nil
}

func (s *ContactsService) DeleteContact(ctx context.Context, req *trackerv1.DeleteContactRequest) (*trackerv1.DeleteContactResponse, error) {
	userID, err := common.ParseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	contactID, err := common.ParseUUID("contact_id", req.GetContactId())
	if err != nil {
		return nil, common.ToGRPC(err)
	}

	if err := s.contactService.DeleteContact(ctx, userID, contactID); err != nil {
		return nil, common.ToGRPC(err)
	}
	return &trackerv1.DeleteContactResponse{}, nil
}
