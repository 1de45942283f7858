package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/AdeenMir/SpendingTracker/infra/cloudrun"
	"github.com/AdeenMir/SpendingTracker/infra/docker"
	"github.com/AdeenMir/SpendingTracker/infra/firestore"
	"github.com/AdeenMir/SpendingTracker/infra/identity"
	"github.com/AdeenMir/SpendingTracker/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// enable identity platform so the API can verify firebase tokens
		ident, err := identity.SetupIdentity(ctx, prov)
		if err != nil {
			return err
		}

		// enable firestore and create the ledger database
		err = firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx)
		if err != nil {
			return err
		}

		_, err = cloudrun.SetupCloudRun(ctx, prov, ident, repo)
		if err != nil {
			return err
		}

		return nil
	})
}
